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

type ScheduleRepository struct {
	BaseRepository
}

var _ portsrepo.ScheduleRepositoryFacade = (*ScheduleRepository)(nil)

func (r *ScheduleRepository) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	m := mapping.ToModelSchedule(schedule)
	return mapError(r.db(ctx).Create(&m).Error, "failed to save schedule "+m.ScheduleID)
}

func (r *ScheduleRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	var m models.Schedule
	if err := r.db(ctx).Where("schedule_id = ?", scheduleID).First(&m).Error; err != nil {
		return nil, mapError(err, "schedule not found")
	}
	s := mapping.ToDomainSchedule(m)
	return &s, nil
}

// ListOverlappingActiveSchedules compares instants, so shifts planned from different zones still collide.
func (r *ScheduleRepository) ListOverlappingActiveSchedules(ctx context.Context, staffID string, start, end time.Time) ([]domain.Schedule, error) {
	var ms []models.Schedule
	err := r.db(ctx).
		Where("staff_id = ? AND deletion_notice IS NULL AND start_time < ? AND end_time > ?", staffID, end.UTC(), start.UTC()).
		Order("start_time").
		Find(&ms).Error
	if err != nil {
		return nil, mapError(err, "failed to list schedules")
	}
	return mapping.ToDomainScheduleSlice(ms), nil
}

func (r *ScheduleRepository) ListSchedulesByRestaurant(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Schedule, error) {
	var ms []models.Schedule
	err := r.db(ctx).
		Where("restaurant_id = ? AND start_time >= ? AND start_time < ?", restaurantID, window.From.UTC(), window.To.UTC()).
		Order("start_time, schedule_id").
		Find(&ms).Error
	if err != nil {
		return nil, mapError(err, "failed to list schedules")
	}
	return mapping.ToDomainScheduleSlice(ms), nil
}

func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, schedule domain.Schedule, expectedVersion int64) error {
	m := mapping.ToModelSchedule(schedule)
	db := r.db(ctx)
	res := db.Model(&models.Schedule{}).
		Where("schedule_id = ? AND version = ?", m.ScheduleID, expectedVersion).
		Updates(map[string]any{
			"checkin_time":    m.CheckinTime,
			"checkout_time":   m.CheckoutTime,
			"deletion_notice": m.DeletionNotice,
			"last_updated_at": m.LastUpdatedAt,
			"last_updated_by": m.LastUpdatedBy,
			"version":         gorm.Expr("version + 1"),
		})
	return checkVersioned(db, res, &models.Schedule{}, "schedule_id = ?", m.ScheduleID, "schedule")
}
