package dto

import (
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
)

// CreateReservationRequest defines the data needed to book a table.
type CreateReservationRequest struct {
	SpaceID     string    `json:"spaceID" binding:"required"`
	ClientID    string    `json:"clientID"` // Optional, empty for anonymous walk-ins
	GuestCount  int       `json:"guestCount" binding:"required,min=1,max=500"`
	ReservedFor time.Time `json:"reservedFor" binding:"required"`
	Preorder    bool      `json:"preorder"`
	Notes       string    `json:"notes" binding:"max=1000"`
}

// TransitionReservationRequest asks for a status change.
type TransitionReservationRequest struct {
	Status domain.ReservationStatus `json:"status" binding:"required,reservation_status"`
}

// ListReservationsParams defines query parameters for listing reservations.
type ListReservationsParams struct {
	Limit     int        `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string    `form:"nextToken"`
	SpaceID   string     `form:"spaceID"`
	Status    string     `form:"status" binding:"omitempty,reservation_status"`
	From      *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To        *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// ReservationResponse defines the data returned for a reservation.
type ReservationResponse struct {
	ReservationID string                   `json:"reservationID"`
	RestaurantID  string                   `json:"restaurantID"`
	SpaceID       string                   `json:"spaceID"`
	ClientID      string                   `json:"clientID"`
	GuestCount    int                      `json:"guestCount"`
	ReservedFor   time.Time                `json:"reservedFor"`
	Status        domain.ReservationStatus `json:"status"`
	Notes         string                   `json:"notes"`
	CreatedAt     time.Time                `json:"createdAt"`
	CreatedBy     string                   `json:"createdBy"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy string                   `json:"lastUpdatedBy"`
	Version       int64                    `json:"version"`
}

// ListReservationsResponse is one page of reservations.
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ReservationHistoryResponse is one entry of the status log.
type ReservationHistoryResponse struct {
	RecordID   string                   `json:"recordID"`
	FromStatus domain.ReservationStatus `json:"fromStatus,omitempty"`
	ToStatus   domain.ReservationStatus `json:"toStatus"`
	Actor      string                   `json:"actor"`
	OccurredAt time.Time                `json:"occurredAt"`
}

// ToReservationResponse converts a domain.Reservation to ReservationResponse DTO
func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID: r.ReservationID,
		RestaurantID:  r.RestaurantID,
		SpaceID:       r.SpaceID,
		ClientID:      r.ClientID,
		GuestCount:    r.GuestCount,
		ReservedFor:   r.ReservedFor,
		Status:        r.Status,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
		Version:       r.Version,
	}
}

// ToListReservationsResponse converts a page of reservations.
func ToListReservationsResponse(reservations []domain.Reservation, nextToken *string) ListReservationsResponse {
	res := ListReservationsResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
		NextToken:    nextToken,
	}
	for i := range reservations {
		res.Reservations[i] = ToReservationResponse(&reservations[i])
	}
	return res
}

// ToReservationHistoryResponse converts the status log.
func ToReservationHistoryResponse(records []domain.ReservationHistoryRecord) []ReservationHistoryResponse {
	res := make([]ReservationHistoryResponse, len(records))
	for i, r := range records {
		res[i] = ReservationHistoryResponse{
			RecordID:   r.RecordID,
			FromStatus: r.FromStatus,
			ToStatus:   r.ToStatus,
			Actor:      r.Actor,
			OccurredAt: r.OccurredAt,
		}
	}
	return res
}
