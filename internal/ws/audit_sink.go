package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
)

// EventReservationStatusChanged is the event type pushed for every reservation transition.
const EventReservationStatusChanged = "reservation.status_changed"

// StatusChangedPayload is the body of a reservation.status_changed event.
type StatusChangedPayload struct {
	ReservationID string                   `json:"reservationID"`
	FromStatus    domain.ReservationStatus `json:"fromStatus,omitempty"`
	ToStatus      domain.ReservationStatus `json:"toStatus"`
	Actor         string                   `json:"actor"`
	OccurredAt    time.Time                `json:"occurredAt"`
}

// HubAuditSink pushes reservation status changes to the restaurant's live feed.
type HubAuditSink struct {
	hub *Hub
}

// NewHubAuditSink creates an audit sink publishing to hub.
func NewHubAuditSink(hub *Hub) *HubAuditSink {
	return &HubAuditSink{hub: hub}
}

var _ portsrepo.AuditSink = (*HubAuditSink)(nil)

// Append broadcasts the record to the room of its restaurant.
func (s *HubAuditSink) Append(ctx context.Context, record domain.ReservationHistoryRecord) error {
	payload, err := json.Marshal(StatusChangedPayload{
		ReservationID: record.ReservationID,
		FromStatus:    record.FromStatus,
		ToStatus:      record.ToStatus,
		Actor:         record.Actor,
		OccurredAt:    record.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("marshal status change: %w", err)
	}
	return s.hub.Broadcast(ctx, record.RestaurantID, Event{Type: EventReservationStatusChanged, Payload: payload})
}
