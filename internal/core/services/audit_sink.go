package services

import (
	"context"
	"log/slog"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
)

// NamedSink labels an audit sink for logging.
type NamedSink struct {
	Name string
	Sink portsrepo.AuditSink
}

// MultiAuditSink hands every record to each sink in order. A failing sink is logged and skipped.
type MultiAuditSink struct {
	BaseService
	sinks []NamedSink
}

// NewMultiAuditSink creates a fan-out sink. Nil sinks are ignored.
func NewMultiAuditSink(sinks ...NamedSink) *MultiAuditSink {
	m := &MultiAuditSink{BaseService: newBaseService()}
	for _, s := range sinks {
		if s.Sink != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

var _ portsrepo.AuditSink = (*MultiAuditSink)(nil)

// Append never returns an error.
func (m *MultiAuditSink) Append(ctx context.Context, record domain.ReservationHistoryRecord) error {
	for _, s := range m.sinks {
		if err := s.Sink.Append(ctx, record); err != nil {
			m.LogWarn(ctx, err, "Audit sink failed",
				slog.String("sink", s.Name),
				slog.String("reservation_id", record.ReservationID),
				slog.String("to_status", string(record.ToStatus)))
		}
	}
	return nil
}
