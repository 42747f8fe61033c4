package gormdb

import (
	"context"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	"github.com/Shunea/be-easyreserv-sub002/internal/models"
	"github.com/Shunea/be-easyreserv-sub002/internal/utils/mapping"
	"gorm.io/gorm"
)

type StaffRepository struct {
	BaseRepository
}

var _ portsrepo.StaffRepositoryFacade = (*StaffRepository)(nil)

func (r *StaffRepository) SaveStaff(ctx context.Context, staff domain.StaffMember) error {
	m := mapping.ToModelStaffMember(staff)
	return mapError(r.db(ctx).Create(&m).Error, "failed to save staff member "+m.StaffID)
}

func (r *StaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	var m models.StaffMember
	if err := r.db(ctx).Where("staff_id = ?", staffID).First(&m).Error; err != nil {
		return nil, mapError(err, "staff member not found")
	}
	staff := mapping.ToDomainStaffMember(m)
	return &staff, nil
}

func (r *StaffRepository) UpdateCurrentSchedule(ctx context.Context, staffID string, scheduleID *string, actor string, expectedVersion int64) error {
	db := r.db(ctx)
	res := db.Model(&models.StaffMember{}).
		Where("staff_id = ? AND version = ?", staffID, expectedVersion).
		Updates(map[string]any{
			"current_schedule_id": scheduleID,
			"last_updated_at":     time.Now().UTC(),
			"last_updated_by":     actor,
			"version":             gorm.Expr("version + 1"),
		})
	return checkVersioned(db, res, &models.StaffMember{}, "staff_id = ?", staffID, "staff member")
}
