package mapping

import (
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/Shunea/be-easyreserv-sub002/internal/models"
)

// ToModelSchedule converts a domain Schedule to a model Schedule
func ToModelSchedule(d domain.Schedule) models.Schedule {
	return models.Schedule{
		ScheduleID:     d.ScheduleID,
		StaffID:        d.StaffID,
		RestaurantID:   d.RestaurantID,
		Date:           domain.CalendarDate(d.Date),
		StartTime:      d.StartTime.UTC(),
		EndTime:        d.EndTime.UTC(),
		CheckinTime:    utcPtr(d.CheckinTime),
		CheckoutTime:   utcPtr(d.CheckoutTime),
		DeletionNotice: d.DeletionNotice,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSchedule converts a model Schedule to a domain Schedule
func ToDomainSchedule(m models.Schedule) domain.Schedule {
	return domain.Schedule{
		ScheduleID:     m.ScheduleID,
		StaffID:        m.StaffID,
		RestaurantID:   m.RestaurantID,
		Date:           domain.CalendarDate(m.Date),
		StartTime:      m.StartTime.UTC(),
		EndTime:        m.EndTime.UTC(),
		CheckinTime:    utcPtr(m.CheckinTime),
		CheckoutTime:   utcPtr(m.CheckoutTime),
		DeletionNotice: m.DeletionNotice,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainScheduleSlice converts a slice of model Schedules to a slice of domain Schedules
func ToDomainScheduleSlice(ms []models.Schedule) []domain.Schedule {
	ds := make([]domain.Schedule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSchedule(m)
	}
	return ds
}
