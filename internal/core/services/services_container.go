package services

import (
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/ports"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The durable history repository is always the first audit sink; extraSinks follow it.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, clock ports.Clock, extraSinks ...NamedSink) *portssvc.ServiceContainer {
	opts := []ServiceOption{WithClock(clock), WithStoreTimeout(cfg.StoreTimeout)}

	sinks := append([]NamedSink{{Name: "history", Sink: repos.HistoryRepo}}, extraSinks...)
	audit := NewMultiAuditSink(sinks...)

	container := &portssvc.ServiceContainer{}
	container.Staff = NewStaffService(repos.StaffRepo, opts...)
	container.Schedule = NewScheduleService(repos.StaffRepo, repos.ScheduleRepo, repos.Tx, opts...)
	container.Reservation = NewReservationService(repos.ReservationRepo, repos.HistoryRepo, audit, opts...)
	container.NoShow = NewNoShowSweeper(repos.ReservationRepo, container.Reservation, cfg.NoShowGracePeriod, cfg.NoShowSweepBatch, opts...)

	loc := cfg.ReportLocation
	if loc == nil {
		loc = time.UTC
	}
	container.Reporting = NewReportingService(repos.ReportingRepo, loc, opts...)

	return container
}
