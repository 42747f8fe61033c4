package services

import (
	"context"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
)

// ScheduleReaderSvc defines read operations for shifts
type ScheduleReaderSvc interface {
	GetSchedule(ctx context.Context, scheduleID string) (*domain.Schedule, error)

	// ListSchedules returns the shifts of a restaurant whose date falls inside the window.
	ListSchedules(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Schedule, error)
}

// ScheduleWriterSvc defines the shift lifecycle operations.
// A zero at means "now" according to the service clock.
type ScheduleWriterSvc interface {
	// PlanShift creates a shift for [start, end) on date. Overlapping active shifts are a validation error.
	PlanShift(ctx context.Context, staffID string, date, start, end time.Time, actor string) (*domain.Schedule, error)

	// CheckIn stamps the check-in time and makes the shift the staff member's current schedule.
	CheckIn(ctx context.Context, scheduleID string, at time.Time, actor string) (*domain.Schedule, error)

	// CheckOut stamps the check-out time and clears the current schedule if it points at this shift.
	CheckOut(ctx context.Context, scheduleID string, at time.Time, actor string) (*domain.Schedule, error)

	// CancelShift soft-deletes a shift that has not been completed.
	CancelShift(ctx context.Context, scheduleID string, reason string, actor string) (*domain.Schedule, error)
}

// ScheduleSvcFacade combines all schedule service interfaces
type ScheduleSvcFacade interface {
	ScheduleReaderSvc
	ScheduleWriterSvc
}
