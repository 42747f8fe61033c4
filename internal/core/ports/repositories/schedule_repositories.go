package repositories

import (
	"context"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
)

// ScheduleReader defines read operations for schedules
type ScheduleReader interface {
	// FindScheduleByID returns apperrors.ErrNotFound when the schedule does not exist.
	FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error)

	// ListOverlappingActiveSchedules returns the non-cancelled shifts of a staff member that overlap [start, end).
	ListOverlappingActiveSchedules(ctx context.Context, staffID string, start, end time.Time) ([]domain.Schedule, error)

	// ListSchedulesByRestaurant returns every shift whose date falls inside the window, cancelled ones included.
	ListSchedulesByRestaurant(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Schedule, error)
}

// ScheduleWriter defines write operations for schedules
type ScheduleWriter interface {
	// SaveSchedule persists a new shift. Implementations reject overlapping active shifts with apperrors.ErrValidation.
	SaveSchedule(ctx context.Context, schedule domain.Schedule) error

	// UpdateSchedule writes check times and the deletion notice if the stored version equals expectedVersion.
	UpdateSchedule(ctx context.Context, schedule domain.Schedule, expectedVersion int64) error
}

// ScheduleRepositoryFacade combines all schedule repository interfaces
type ScheduleRepositoryFacade interface {
	ScheduleReader
	ScheduleWriter
}
