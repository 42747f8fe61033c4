package mapping

import (
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/Shunea/be-easyreserv-sub002/internal/models"
)

// ToModelReservation converts a domain Reservation to a model Reservation
func ToModelReservation(d domain.Reservation) models.Reservation {
	return models.Reservation{
		ReservationID: d.ReservationID,
		RestaurantID:  d.RestaurantID,
		SpaceID:       d.SpaceID,
		ClientID:      nullable(d.ClientID),
		GuestCount:    d.GuestCount,
		ReservedFor:   d.ReservedFor.UTC(),
		Status:        string(d.Status),
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReservation converts a model Reservation to a domain Reservation
func ToDomainReservation(m models.Reservation) domain.Reservation {
	return domain.Reservation{
		ReservationID: m.ReservationID,
		RestaurantID:  m.RestaurantID,
		SpaceID:       m.SpaceID,
		ClientID:      deref(m.ClientID),
		GuestCount:    m.GuestCount,
		ReservedFor:   m.ReservedFor.UTC(),
		Status:        domain.ReservationStatus(m.Status),
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReservationSlice converts a slice of model Reservations to a slice of domain Reservations
func ToDomainReservationSlice(ms []models.Reservation) []domain.Reservation {
	ds := make([]domain.Reservation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReservation(m)
	}
	return ds
}

// ToModelReservationHistory converts a history record to its row.
func ToModelReservationHistory(d domain.ReservationHistoryRecord) models.ReservationHistory {
	return models.ReservationHistory{
		RecordID:      d.RecordID,
		ReservationID: d.ReservationID,
		RestaurantID:  d.RestaurantID,
		FromStatus:    nullable(string(d.FromStatus)),
		ToStatus:      string(d.ToStatus),
		Actor:         d.Actor,
		OccurredAt:    d.OccurredAt.UTC(),
	}
}

// ToDomainReservationHistory converts a history row to a record.
func ToDomainReservationHistory(m models.ReservationHistory) domain.ReservationHistoryRecord {
	return domain.ReservationHistoryRecord{
		RecordID:      m.RecordID,
		ReservationID: m.ReservationID,
		RestaurantID:  m.RestaurantID,
		FromStatus:    domain.ReservationStatus(deref(m.FromStatus)),
		ToStatus:      domain.ReservationStatus(m.ToStatus),
		Actor:         m.Actor,
		OccurredAt:    m.OccurredAt.UTC(),
	}
}

// ToDomainReservationHistorySlice converts history rows to records.
func ToDomainReservationHistorySlice(ms []models.ReservationHistory) []domain.ReservationHistoryRecord {
	ds := make([]domain.ReservationHistoryRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReservationHistory(m)
	}
	return ds
}
