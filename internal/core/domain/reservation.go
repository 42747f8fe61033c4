package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
)

// ReservationStatus is a state of the reservation lifecycle.
type ReservationStatus string

const (
	StatusPending           ReservationStatus = "PENDING"
	StatusPendingPreorder   ReservationStatus = "PENDING_PREORDER"
	StatusConfirmed         ReservationStatus = "CONFIRMED"
	StatusConfirmedPreorder ReservationStatus = "CONFIRMED_PREORDER"
	StatusServe             ReservationStatus = "SERVE"
	StatusServePreorder     ReservationStatus = "SERVE_PREORDER"
	StatusClosed            ReservationStatus = "CLOSED"
	StatusCancelled         ReservationStatus = "CANCELLED"
	StatusDishonored        ReservationStatus = "DISHONORED"
	StatusRejected          ReservationStatus = "REJECTED"
)

// reservationTransitions lists the allowed directed edges. Terminal states have no entry.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:           {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusPendingPreorder:   {StatusConfirmedPreorder, StatusRejected, StatusCancelled},
	StatusConfirmed:         {StatusServe, StatusDishonored, StatusCancelled},
	StatusConfirmedPreorder: {StatusServePreorder, StatusDishonored, StatusCancelled},
	StatusServe:             {StatusClosed},
	StatusServePreorder:     {StatusClosed},
}

// AllReservationStatuses returns every status in declaration order.
func AllReservationStatuses() []ReservationStatus {
	return []ReservationStatus{
		StatusPending, StatusPendingPreorder, StatusConfirmed, StatusConfirmedPreorder,
		StatusServe, StatusServePreorder, StatusClosed, StatusCancelled, StatusDishonored, StatusRejected,
	}
}

// ParseReservationStatus accepts only the canonical spellings.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	for _, st := range AllReservationStatuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown reservation status %q", s)
}

// IsValid reports whether s is a known status.
func (s ReservationStatus) IsValid() bool {
	_, err := ParseReservationStatus(string(s))
	return err == nil
}

// IsTerminal reports whether no transition leaves s.
func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case StatusClosed, StatusCancelled, StatusDishonored, StatusRejected:
		return true
	}
	return false
}

// IsPreorder reports whether s belongs to the preorder branch.
func (s ReservationStatus) IsPreorder() bool {
	switch s {
	case StatusPendingPreorder, StatusConfirmedPreorder, StatusServePreorder:
		return true
	}
	return false
}

// IsConfirmed reports whether s is one of the confirmed states eligible for the no-show sweep.
func (s ReservationStatus) IsConfirmed() bool {
	return s == StatusConfirmed || s == StatusConfirmedPreorder
}

// IsVisit reports whether a reservation in status s represents a guest who showed up.
func (s ReservationStatus) IsVisit() bool {
	return s == StatusServe || s == StatusServePreorder || s == StatusClosed
}

// AllowedTransitions returns a copy of the outgoing edges of s.
func (s ReservationStatus) AllowedTransitions() []ReservationStatus {
	next := reservationTransitions[s]
	out := make([]ReservationStatus, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether from -> to is an allowed edge.
func CanTransition(from, to ReservationStatus) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InitialReservationStatus is the state a new reservation starts in.
func InitialReservationStatus(preorder bool) ReservationStatus {
	if preorder {
		return StatusPendingPreorder
	}
	return StatusPending
}

// Reservation is a table booking for a restaurant space.
type Reservation struct {
	ReservationID string            `json:"reservationID"`
	RestaurantID  string            `json:"restaurantID"`
	SpaceID       string            `json:"spaceID"`
	ClientID      string            `json:"clientID"` // Empty for walk-ins without an identity
	GuestCount    int               `json:"guestCount"`
	ReservedFor   time.Time         `json:"reservedFor"`
	Status        ReservationStatus `json:"status"`
	Notes         string            `json:"notes"`
	AuditFields
}

// Validate checks the fields a caller must supply when booking.
func (r *Reservation) Validate() error {
	if strings.TrimSpace(r.RestaurantID) == "" || strings.TrimSpace(r.SpaceID) == "" {
		return apperrors.NewValidationFailedError("restaurant and space are required")
	}
	if r.GuestCount < 1 {
		return apperrors.NewValidationFailedError("guest count must be at least 1")
	}
	if r.ReservedFor.IsZero() {
		return apperrors.NewValidationFailedError("reservation time is required")
	}
	return nil
}

// ReservationHistoryRecord is one entry of the append-only status log.
// FromStatus is empty for the record written when the reservation is created.
type ReservationHistoryRecord struct {
	RecordID      string            `json:"recordID"`
	ReservationID string            `json:"reservationID"`
	RestaurantID  string            `json:"restaurantID"`
	FromStatus    ReservationStatus `json:"fromStatus"`
	ToStatus      ReservationStatus `json:"toStatus"`
	Actor         string            `json:"actor"`
	OccurredAt    time.Time         `json:"occurredAt"`
}

// ReservationFilter narrows reservation listings.
type ReservationFilter struct {
	RestaurantID string
	SpaceID      string
	Status       *ReservationStatus
	From         *time.Time
	To           *time.Time
}

// ReservationKey is the (reservedFor, id) position listings are ordered and resumed by.
type ReservationKey struct {
	ReservedFor   time.Time
	ReservationID string
}

// Key returns the listing position of r.
func (r *Reservation) Key() ReservationKey {
	return ReservationKey{ReservedFor: r.ReservedFor, ReservationID: r.ReservationID}
}
