package domain

import (
	"strings"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
)

// Schedule is one planned shift of a staff member.
//
// CheckinTime and CheckoutTime are nil until the matching event happens and are written at most once.
// A schedule is never physically removed once planned: cancelling it records a DeletionNotice.
type Schedule struct {
	ScheduleID     string     `json:"scheduleID"`
	StaffID        string     `json:"staffID"`
	RestaurantID   string     `json:"restaurantID"`
	Date           time.Time  `json:"date"`
	StartTime      time.Time  `json:"startTime"`
	EndTime        time.Time  `json:"endTime"`
	CheckinTime    *time.Time `json:"checkinTime,omitempty"`
	CheckoutTime   *time.Time `json:"checkoutTime,omitempty"`
	DeletionNotice *string    `json:"deletionNotice,omitempty"`
	AuditFields
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CalendarDate returns the day t falls on in its own location, as midnight UTC.
// Shift dates are stored this way so the day survives a round trip through UTC storage.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateShiftWindow checks that [start, end) is a non-empty interval inside the calendar day date.
func ValidateShiftWindow(date, start, end time.Time) error {
	if date.IsZero() || start.IsZero() || end.IsZero() {
		return apperrors.NewValidationFailedError("date, start and end time are required")
	}
	if !end.After(start) {
		return apperrors.NewValidationFailedError("shift end time must be after start time")
	}
	day := DateOnly(date)
	if start.Before(day) || !start.Before(day.AddDate(0, 0, 1)) {
		return apperrors.NewValidationFailedError("shift must start on its scheduled date")
	}
	if end.After(day.AddDate(0, 0, 1)) {
		return apperrors.NewValidationFailedError("shift must end on its scheduled date")
	}
	return nil
}

// IsCancelled reports whether the shift carries a deletion notice.
func (s *Schedule) IsCancelled() bool {
	return s.DeletionNotice != nil
}

// IsCompleted reports whether the staff member has checked out.
func (s *Schedule) IsCompleted() bool {
	return s.CheckoutTime != nil
}

// Overlaps uses half-open [start, end) semantics: touching boundaries do not overlap.
func (s *Schedule) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && start.Before(s.EndTime)
}

// CheckIn records the check-in time.
func (s *Schedule) CheckIn(at time.Time) error {
	if s.IsCancelled() {
		return apperrors.NewInvalidStateError("cannot check in to a cancelled shift")
	}
	if s.CheckinTime != nil {
		return apperrors.NewInvalidStateError("shift already checked in")
	}
	t := at
	s.CheckinTime = &t
	return nil
}

// CheckOut records the check-out time; it must not precede the check-in.
// A shift cancelled after check-in can still be checked out so the worked interval is kept.
func (s *Schedule) CheckOut(at time.Time) error {
	if s.CheckinTime == nil {
		return apperrors.NewInvalidStateError("shift has not been checked in")
	}
	if s.CheckoutTime != nil {
		return apperrors.NewInvalidStateError("shift already checked out")
	}
	if at.Before(*s.CheckinTime) {
		return apperrors.NewInvalidStateError("check-out time precedes check-in time")
	}
	t := at
	s.CheckoutTime = &t
	return nil
}

// Cancel soft-deletes the shift with reason. Completed shifts stay as they are.
func (s *Schedule) Cancel(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperrors.NewValidationFailedError("cancellation reason is required")
	}
	if s.IsCompleted() {
		return apperrors.NewInvalidStateError("cannot cancel a completed shift")
	}
	if s.IsCancelled() {
		return apperrors.NewInvalidStateError("shift already cancelled")
	}
	s.DeletionNotice = &reason
	return nil
}
