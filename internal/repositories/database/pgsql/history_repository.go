package pgsql

import (
	"context"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	"github.com/Shunea/be-easyreserv-sub002/internal/models"
	"github.com/Shunea/be-easyreserv-sub002/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxHistoryRepository stores the append-only reservation status log.
type PgxHistoryRepository struct {
	BaseRepository
}

func newPgxHistoryRepository(pool *pgxpool.Pool) portsrepo.ReservationHistoryRepositoryFacade {
	return &PgxHistoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReservationHistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

// Append inserts one history record. Rows are never updated.
func (r *PgxHistoryRepository) Append(ctx context.Context, record domain.ReservationHistoryRecord) error {
	m := mapping.ToModelReservationHistory(record)
	query := `
		INSERT INTO reservation_history (record_id, reservation_id, restaurant_id, from_status, to_status, actor, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.RecordID, m.ReservationID, m.RestaurantID, m.FromStatus, m.ToStatus, m.Actor, m.OccurredAt)
	return mapError(err, "failed to append reservation history")
}

// ListHistory returns the records of a reservation, oldest first.
func (r *PgxHistoryRepository) ListHistory(ctx context.Context, reservationID string) ([]domain.ReservationHistoryRecord, error) {
	query := `
		SELECT record_id, reservation_id, restaurant_id, from_status, to_status, actor, occurred_at
		FROM reservation_history
		WHERE reservation_id = $1
		ORDER BY occurred_at, seq
	`
	rows, err := r.db(ctx).Query(ctx, query, reservationID)
	if err != nil {
		return nil, mapError(err, "failed to query reservation history")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ReservationHistory])
	if err != nil {
		return nil, mapError(err, "failed to scan reservation history")
	}
	return mapping.ToDomainReservationHistorySlice(ms), nil
}
