package dto

import (
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
)

// PlanShiftRequest defines a shift to plan. Date is a calendar date, start and end are full timestamps.
type PlanShiftRequest struct {
	Date      string    `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required,gtfield=StartTime"`
}

// ShiftDate parses Date in the location of StartTime, so the shift window is checked against the caller's calendar day.
func (r PlanShiftRequest) ShiftDate() (time.Time, error) {
	d, err := time.ParseInLocation(domain.ReportDateLayout, r.Date, r.StartTime.Location())
	if err != nil {
		return time.Time{}, apperrors.NewValidationFailedError("invalid shift date")
	}
	return d, nil
}

// ShiftEventRequest is the body of check-in and check-out. A missing timestamp means now.
type ShiftEventRequest struct {
	At *time.Time `json:"at"`
}

// CancelShiftRequest carries the deletion notice.
type CancelShiftRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ScheduleResponse defines the data returned for a shift.
type ScheduleResponse struct {
	ScheduleID     string     `json:"scheduleID"`
	StaffID        string     `json:"staffID"`
	RestaurantID   string     `json:"restaurantID"`
	Date           string     `json:"date"`
	StartTime      time.Time  `json:"startTime"`
	EndTime        time.Time  `json:"endTime"`
	CheckinTime    *time.Time `json:"checkinTime"`
	CheckoutTime   *time.Time `json:"checkoutTime"`
	DeletionNotice *string    `json:"deletionNotice"`
	Version        int64      `json:"version"`
}

// ToScheduleResponse converts a domain.Schedule to ScheduleResponse DTO
func ToScheduleResponse(s *domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:     s.ScheduleID,
		StaffID:        s.StaffID,
		RestaurantID:   s.RestaurantID,
		Date:           s.Date.Format(domain.ReportDateLayout),
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		CheckinTime:    s.CheckinTime,
		CheckoutTime:   s.CheckoutTime,
		DeletionNotice: s.DeletionNotice,
		Version:        s.Version,
	}
}

// ToListScheduleResponse converts a slice of domain.Schedule to ScheduleResponse DTOs
func ToListScheduleResponse(schedules []domain.Schedule) []ScheduleResponse {
	res := make([]ScheduleResponse, len(schedules))
	for i := range schedules {
		res[i] = ToScheduleResponse(&schedules[i])
	}
	return res
}
