package repositories

import (
	"context"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
)

// ReservationReader defines read operations for reservations
type ReservationReader interface {
	// FindReservationByID returns apperrors.ErrNotFound when the reservation does not exist.
	FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error)

	// ListReservations returns a page ordered by reservedFor then id, plus a token for the next page.
	ListReservations(ctx context.Context, filter domain.ReservationFilter, limit int, nextToken *string) ([]domain.Reservation, *string, error)

	// ListNoShowCandidates returns confirmed reservations (both branches) reserved for before the given instant, oldest first.
	// A non-nil after resumes strictly past that position.
	ListNoShowCandidates(ctx context.Context, before time.Time, after *domain.ReservationKey, limit int) ([]domain.Reservation, error)
}

// ReservationWriter defines write operations for reservations
type ReservationWriter interface {
	// SaveReservation persists a new reservation.
	SaveReservation(ctx context.Context, reservation domain.Reservation) error

	// UpdateReservationStatus writes the status if the stored version equals expectedVersion.
	UpdateReservationStatus(ctx context.Context, reservation domain.Reservation, expectedVersion int64) error
}

// ReservationHistoryReader reads the append-only status log.
type ReservationHistoryReader interface {
	// ListHistory returns the records of one reservation in the order they occurred.
	ListHistory(ctx context.Context, reservationID string) ([]domain.ReservationHistoryRecord, error)
}

// AuditSink receives a record for every reservation status change.
type AuditSink interface {
	Append(ctx context.Context, record domain.ReservationHistoryRecord) error
}

// ReservationRepositoryFacade combines all reservation repository interfaces
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}

// ReservationHistoryRepositoryFacade is the durable history log: readable, and usable as an audit sink.
type ReservationHistoryRepositoryFacade interface {
	ReservationHistoryReader
	AuditSink
}
