package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
	"github.com/google/uuid"
)

// scheduleService owns shifts, their check-in/out events and the staff current-schedule pointer.
type scheduleService struct {
	BaseService
	staffRepo    portsrepo.StaffRepositoryFacade
	scheduleRepo portsrepo.ScheduleRepositoryFacade
	tx           portsrepo.TransactionManager
}

// NewScheduleService creates a new schedule service with the provided options
func NewScheduleService(
	staffRepo portsrepo.StaffRepositoryFacade,
	scheduleRepo portsrepo.ScheduleRepositoryFacade,
	tx portsrepo.TransactionManager,
	options ...ServiceOption,
) portssvc.ScheduleSvcFacade {
	return &scheduleService{
		BaseService:  newBaseService(options...),
		staffRepo:    staffRepo,
		scheduleRepo: scheduleRepo,
		tx:           tx,
	}
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

// PlanShift validates the window, rejects overlaps with active shifts and stores the new shift.
func (s *scheduleService) PlanShift(ctx context.Context, staffID string, date, start, end time.Time, actor string) (*domain.Schedule, error) {
	if err := domain.ValidateShiftWindow(date, start, end); err != nil {
		return nil, err
	}

	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	var planned *domain.Schedule
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
		if err != nil {
			return err
		}

		existing, err := s.scheduleRepo.ListOverlappingActiveSchedules(ctx, staffID, start, end)
		if err != nil {
			return err
		}
		for i := range existing {
			if existing[i].Overlaps(start, end) {
				return apperrors.NewValidationFailedError("shift overlaps existing shift " + existing[i].ScheduleID)
			}
		}

		sched := domain.Schedule{
			ScheduleID:   uuid.NewString(),
			StaffID:      staffID,
			RestaurantID: staff.RestaurantID,
			Date:         domain.CalendarDate(date),
			StartTime:    start,
			EndTime:      end,
			AuditFields:  domain.NewAuditFields(actor, s.now()),
		}
		if err := s.scheduleRepo.SaveSchedule(ctx, sched); err != nil {
			return err
		}
		planned = &sched
		return nil
	})
	if err != nil {
		err = storeError(err)
		s.logFailure(ctx, err, "Failed to plan shift", slog.String("staff_id", staffID))
		return nil, err
	}

	s.LogInfo(ctx, "Shift planned",
		slog.String("schedule_id", planned.ScheduleID),
		slog.String("staff_id", staffID),
		slog.Time("start", start),
		slog.Time("end", end))
	return planned, nil
}

// CheckIn stamps the check-in time and points the staff member at this shift, atomically.
func (s *scheduleService) CheckIn(ctx context.Context, scheduleID string, at time.Time, actor string) (*domain.Schedule, error) {
	if at.IsZero() {
		at = s.now()
	}

	sched, err := s.mutate(ctx, scheduleID, actor, func(ctx context.Context, sched *domain.Schedule) error {
		if err := sched.CheckIn(at); err != nil {
			return err
		}
		return s.claimCurrent(ctx, sched, actor)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to check in", slog.String("schedule_id", scheduleID))
		return nil, err
	}

	s.LogInfo(ctx, "Staff checked in",
		slog.String("schedule_id", scheduleID),
		slog.String("staff_id", sched.StaffID),
		slog.Time("at", at))
	return sched, nil
}

// CheckOut stamps the check-out time and clears the staff pointer if it names this shift.
func (s *scheduleService) CheckOut(ctx context.Context, scheduleID string, at time.Time, actor string) (*domain.Schedule, error) {
	if at.IsZero() {
		at = s.now()
	}

	sched, err := s.mutate(ctx, scheduleID, actor, func(ctx context.Context, sched *domain.Schedule) error {
		if err := sched.CheckOut(at); err != nil {
			return err
		}
		return s.releaseCurrent(ctx, sched, actor)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to check out", slog.String("schedule_id", scheduleID))
		return nil, err
	}

	s.LogInfo(ctx, "Staff checked out",
		slog.String("schedule_id", scheduleID),
		slog.String("staff_id", sched.StaffID),
		slog.Time("at", at))
	return sched, nil
}

// CancelShift records the deletion notice. The row itself is kept.
func (s *scheduleService) CancelShift(ctx context.Context, scheduleID string, reason string, actor string) (*domain.Schedule, error) {
	sched, err := s.mutate(ctx, scheduleID, actor, func(ctx context.Context, sched *domain.Schedule) error {
		if err := sched.Cancel(reason); err != nil {
			return err
		}
		return s.releaseCurrent(ctx, sched, actor)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to cancel shift", slog.String("schedule_id", scheduleID))
		return nil, err
	}

	s.LogInfo(ctx, "Shift cancelled", slog.String("schedule_id", scheduleID), slog.String("reason", *sched.DeletionNotice))
	return sched, nil
}

// GetSchedule retrieves a shift by its ID.
func (s *scheduleService) GetSchedule(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	sched, err := readWithRetry(ctx, &s.BaseService, "get_schedule", func(ctx context.Context) (*domain.Schedule, error) {
		return s.scheduleRepo.FindScheduleByID(ctx, scheduleID)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to get schedule", slog.String("schedule_id", scheduleID))
		return nil, err
	}
	return sched, nil
}

// ListSchedules lists the shifts of a restaurant within a window.
func (s *scheduleService) ListSchedules(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Schedule, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	schedules, err := readWithRetry(ctx, &s.BaseService, "list_schedules", func(ctx context.Context) ([]domain.Schedule, error) {
		return s.scheduleRepo.ListSchedulesByRestaurant(ctx, restaurantID, window)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to list schedules", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if schedules == nil {
		return []domain.Schedule{}, nil
	}
	return schedules, nil
}

// mutate loads a shift, applies change and writes it back under the version read, all in one transaction.
func (s *scheduleService) mutate(ctx context.Context, scheduleID, actor string, change func(ctx context.Context, sched *domain.Schedule) error) (*domain.Schedule, error) {
	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	var result *domain.Schedule
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		sched, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID)
		if err != nil {
			return err
		}
		expected := sched.Version

		if err := change(ctx, sched); err != nil {
			return err
		}
		sched.Touch(actor, s.now())
		if err := s.scheduleRepo.UpdateSchedule(ctx, *sched, expected); err != nil {
			return err
		}
		sched.Version = expected + 1
		result = sched
		return nil
	})
	if err != nil {
		return nil, storeError(err)
	}
	return result, nil
}

// claimCurrent makes sched the staff member's current schedule, replacing any previous one.
func (s *scheduleService) claimCurrent(ctx context.Context, sched *domain.Schedule, actor string) error {
	staff, err := s.staffRepo.FindStaffByID(ctx, sched.StaffID)
	if err != nil {
		return err
	}
	id := sched.ScheduleID
	return s.staffRepo.UpdateCurrentSchedule(ctx, staff.StaffID, &id, actor, staff.Version)
}

// releaseCurrent clears the staff member's current schedule when it points at sched.
func (s *scheduleService) releaseCurrent(ctx context.Context, sched *domain.Schedule, actor string) error {
	staff, err := s.staffRepo.FindStaffByID(ctx, sched.StaffID)
	if err != nil {
		return err
	}
	if !staff.IsClockedInto(sched.ScheduleID) {
		return nil
	}
	return s.staffRepo.UpdateCurrentSchedule(ctx, staff.StaffID, nil, actor, staff.Version)
}
