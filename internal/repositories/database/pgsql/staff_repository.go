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

const staffColumns = `staff_id, restaurant_id, user_id, full_name, role, salary_type, salary, currency,
	current_schedule_id, created_at, created_by, last_updated_at, last_updated_by, version`

type PgxStaffRepository struct {
	BaseRepository
}

func newPgxStaffRepository(pool *pgxpool.Pool) portsrepo.StaffRepositoryFacade {
	return &PgxStaffRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

// SaveStaff inserts a new staff member.
func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.StaffMember) error {
	m := mapping.ToModelStaffMember(staff)
	query := `
		INSERT INTO staff_members (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.StaffID, m.RestaurantID, m.UserID, m.FullName, m.Role, m.SalaryType, m.Salary, m.Currency,
		m.CurrentScheduleID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	return mapError(err, "failed to save staff member "+m.StaffID)
}

// FindStaffByID retrieves a staff member by ID.
func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_members WHERE staff_id = $1;`
	rows, err := r.db(ctx).Query(ctx, query, staffID)
	if err != nil {
		return nil, mapError(err, "failed to query staff member")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.StaffMember])
	if err != nil {
		return nil, mapError(err, "staff member not found")
	}
	staff := mapping.ToDomainStaffMember(m)
	return &staff, nil
}

// UpdateCurrentSchedule points the staff member at scheduleID (nil clears it) if the version still matches.
func (r *PgxStaffRepository) UpdateCurrentSchedule(ctx context.Context, staffID string, scheduleID *string, actor string, expectedVersion int64) error {
	query := `
		UPDATE staff_members
		SET current_schedule_id = $2, last_updated_at = now(), last_updated_by = $3, version = version + 1
		WHERE staff_id = $1 AND version = $4;
	`
	q := r.db(ctx)
	tag, err := q.Exec(ctx, query, staffID, scheduleID, actor, expectedVersion)
	if err != nil {
		return mapError(err, "failed to update current schedule of staff member "+staffID)
	}
	return checkVersioned(ctx, q, tag, `SELECT 1 FROM staff_members WHERE staff_id = $1`, staffID, "staff member")
}
