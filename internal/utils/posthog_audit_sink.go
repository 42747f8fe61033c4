package utils

import (
	"context"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
)

// EventReservationStatusChanged is the analytics event name for reservation transitions.
const EventReservationStatusChanged = "reservation_status_changed"

// PosthogAuditSink forwards reservation transitions to posthog, keyed by the acting user.
type PosthogAuditSink struct {
	client *PosthogClientWrapper
}

// NewPosthogAuditSink returns nil when the client is disabled, which the audit fan-out skips.
func NewPosthogAuditSink(client *PosthogClientWrapper) *PosthogAuditSink {
	if !client.IsInitialized() {
		return nil
	}
	return &PosthogAuditSink{client: client}
}

var _ portsrepo.AuditSink = (*PosthogAuditSink)(nil)

func (s *PosthogAuditSink) Append(_ context.Context, record domain.ReservationHistoryRecord) error {
	if s == nil {
		return nil
	}
	return s.client.Enqueue(record.Actor, EventReservationStatusChanged, map[string]any{
		"reservation_id": record.ReservationID,
		"restaurant_id":  record.RestaurantID,
		"from_status":    string(record.FromStatus),
		"to_status":      string(record.ToStatus),
		"occurred_at":    record.OccurredAt.UTC().Format(time.RFC3339),
	})
}
