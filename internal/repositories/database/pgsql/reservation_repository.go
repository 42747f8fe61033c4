package pgsql

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	"github.com/Shunea/be-easyreserv-sub002/internal/models"
	"github.com/Shunea/be-easyreserv-sub002/internal/utils/mapping"
	"github.com/Shunea/be-easyreserv-sub002/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `reservation_id, restaurant_id, space_id, client_id, guest_count, reserved_for, status, notes,
	created_at, created_by, last_updated_at, last_updated_by, version`

type PgxReservationRepository struct {
	BaseRepository
}

func newPgxReservationRepository(pool *pgxpool.Pool) portsrepo.ReservationRepositoryFacade {
	return &PgxReservationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReservationRepositoryFacade = (*PgxReservationRepository)(nil)

// SaveReservation inserts a new reservation.
func (r *PgxReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	m := mapping.ToModelReservation(reservation)
	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.ReservationID, m.RestaurantID, m.SpaceID, m.ClientID, m.GuestCount, m.ReservedFor, m.Status, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	return mapError(err, "failed to save reservation "+m.ReservationID)
}

// FindReservationByID retrieves a reservation by ID.
func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_id = $1;`
	rows, err := r.db(ctx).Query(ctx, query, reservationID)
	if err != nil {
		return nil, mapError(err, "failed to query reservation")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Reservation])
	if err != nil {
		return nil, mapError(err, "reservation not found")
	}
	res := mapping.ToDomainReservation(m)
	return &res, nil
}

// ListReservations returns one page ordered by (reserved_for, reservation_id) using keyset pagination.
func (r *PgxReservationRepository) ListReservations(ctx context.Context, filter domain.ReservationFilter, limit int, nextToken *string) ([]domain.Reservation, *string, error) {
	conds := []string{"restaurant_id = $1"}
	args := []any{filter.RestaurantID}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.SpaceID != "" {
		conds = append(conds, "space_id = "+arg(filter.SpaceID))
	}
	if filter.Status != nil {
		conds = append(conds, "status = "+arg(string(*filter.Status)))
	}
	if filter.From != nil {
		conds = append(conds, "reserved_for >= "+arg(filter.From.UTC()))
	}
	if filter.To != nil {
		conds = append(conds, "reserved_for < "+arg(filter.To.UTC()))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		conds = append(conds, "(reserved_for, reservation_id) > ("+arg(cursor.At)+", "+arg(cursor.ID)+")")
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY reserved_for, reservation_id LIMIT ` + arg(limit)

	list, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	next := pagination.NextToken(list, limit, func(res domain.Reservation) (time.Time, string) {
		return res.ReservedFor, res.ReservationID
	})
	return list, next, nil
}

// ListNoShowCandidates returns confirmed reservations due before the given instant, oldest first.
func (r *PgxReservationRepository) ListNoShowCandidates(ctx context.Context, before time.Time, after *domain.ReservationKey, limit int) ([]domain.Reservation, error) {
	if after == nil {
		query := `
			SELECT ` + reservationColumns + `
			FROM reservations
			WHERE status IN ('CONFIRMED', 'CONFIRMED_PREORDER') AND reserved_for < $1
			ORDER BY reserved_for, reservation_id
			LIMIT $2
		`
		return r.list(ctx, query, before.UTC(), limit)
	}
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE status IN ('CONFIRMED', 'CONFIRMED_PREORDER') AND reserved_for < $1
			AND (reserved_for, reservation_id) > ($2, $3)
		ORDER BY reserved_for, reservation_id
		LIMIT $4
	`
	return r.list(ctx, query, before.UTC(), after.ReservedFor.UTC(), after.ReservationID, limit)
}

// UpdateReservationStatus writes the new status if the version still matches.
func (r *PgxReservationRepository) UpdateReservationStatus(ctx context.Context, reservation domain.Reservation, expectedVersion int64) error {
	m := mapping.ToModelReservation(reservation)
	query := `
		UPDATE reservations
		SET status = $2, last_updated_at = $3, last_updated_by = $4, version = version + 1
		WHERE reservation_id = $1 AND version = $5;
	`
	q := r.db(ctx)
	tag, err := q.Exec(ctx, query, m.ReservationID, m.Status, m.LastUpdatedAt, m.LastUpdatedBy, expectedVersion)
	if err != nil {
		return mapError(err, "failed to update reservation "+m.ReservationID)
	}
	return checkVersioned(ctx, q, tag, `SELECT 1 FROM reservations WHERE reservation_id = $1`, m.ReservationID, "reservation")
}

func (r *PgxReservationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to query reservations")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Reservation])
	if err != nil {
		return nil, mapError(err, "failed to scan reservations")
	}
	return mapping.ToDomainReservationSlice(ms), nil
}
