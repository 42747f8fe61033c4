package pgsql

import (
	"context"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	"github.com/Shunea/be-easyreserv-sub002/internal/models"
	"github.com/Shunea/be-easyreserv-sub002/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const scheduleColumns = `schedule_id, staff_id, restaurant_id, shift_date, start_time, end_time, checkin_time,
	checkout_time, deletion_notice, created_at, created_by, last_updated_at, last_updated_by, version`

type PgxScheduleRepository struct {
	BaseRepository
}

func newPgxScheduleRepository(pool *pgxpool.Pool) portsrepo.ScheduleRepositoryFacade {
	return &PgxScheduleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ScheduleRepositoryFacade = (*PgxScheduleRepository)(nil)

// SaveSchedule inserts a new shift. The exclusion constraint rejects overlaps that raced past the service check.
func (r *PgxScheduleRepository) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	m := mapping.ToModelSchedule(schedule)
	query := `
		INSERT INTO schedules (` + scheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.ScheduleID, m.StaffID, m.RestaurantID, m.Date, m.StartTime, m.EndTime, m.CheckinTime,
		m.CheckoutTime, m.DeletionNotice, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	return mapError(err, "failed to save schedule "+m.ScheduleID)
}

// FindScheduleByID retrieves a shift by ID.
func (r *PgxScheduleRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE schedule_id = $1;`
	rows, err := r.db(ctx).Query(ctx, query, scheduleID)
	if err != nil {
		return nil, mapError(err, "failed to query schedule")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Schedule])
	if err != nil {
		return nil, mapError(err, "schedule not found")
	}
	s := mapping.ToDomainSchedule(m)
	return &s, nil
}

// ListOverlappingActiveSchedules returns the non-cancelled shifts of a staff member overlapping [start, end).
// Inside a transaction the rows are locked so concurrent planners serialise.
func (r *PgxScheduleRepository) ListOverlappingActiveSchedules(ctx context.Context, staffID string, start, end time.Time) ([]domain.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE staff_id = $1 AND deletion_notice IS NULL AND start_time < $3 AND end_time > $2
		ORDER BY start_time
	`
	if _, inTx := ctx.Value(txKey{}).(pgx.Tx); inTx {
		query += ` FOR UPDATE`
	}
	return r.list(ctx, query, staffID, start.UTC(), end.UTC())
}

// ListSchedulesByRestaurant returns every shift, cancelled ones included, starting inside the window.
func (r *PgxScheduleRepository) ListSchedulesByRestaurant(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE restaurant_id = $1 AND start_time >= $2 AND start_time < $3
		ORDER BY start_time, schedule_id
	`
	return r.list(ctx, query, restaurantID, window.From.UTC(), window.To.UTC())
}

// UpdateSchedule writes the mutable columns if the version still matches.
func (r *PgxScheduleRepository) UpdateSchedule(ctx context.Context, schedule domain.Schedule, expectedVersion int64) error {
	m := mapping.ToModelSchedule(schedule)
	query := `
		UPDATE schedules
		SET checkin_time = $2, checkout_time = $3, deletion_notice = $4,
		    last_updated_at = $5, last_updated_by = $6, version = version + 1
		WHERE schedule_id = $1 AND version = $7;
	`
	q := r.db(ctx)
	tag, err := q.Exec(ctx, query, m.ScheduleID, m.CheckinTime, m.CheckoutTime, m.DeletionNotice,
		m.LastUpdatedAt, m.LastUpdatedBy, expectedVersion)
	if err != nil {
		return mapError(err, "failed to update schedule "+m.ScheduleID)
	}
	return checkVersioned(ctx, q, tag, `SELECT 1 FROM schedules WHERE schedule_id = $1`, m.ScheduleID, "schedule")
}

func (r *PgxScheduleRepository) list(ctx context.Context, query string, args ...any) ([]domain.Schedule, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to query schedules")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Schedule])
	if err != nil {
		return nil, mapError(err, "failed to scan schedules")
	}
	return mapping.ToDomainScheduleSlice(ms), nil
}
