package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
)

const defaultSweepBatch = 200

type noShowSweeper struct {
	BaseService
	reservations portsrepo.ReservationReader
	marker       portssvc.ReservationWriterSvc
	grace        time.Duration
	batch        int
}

// NewNoShowSweeper creates the sweep that dishonors confirmed reservations once
// reservedFor + grace has passed. It is driven by an external scheduler.
func NewNoShowSweeper(
	reservations portsrepo.ReservationReader,
	marker portssvc.ReservationWriterSvc,
	grace time.Duration,
	batch int,
	options ...ServiceOption,
) portssvc.NoShowSweeperSvc {
	if batch <= 0 {
		batch = defaultSweepBatch
	}
	return &noShowSweeper{
		BaseService:  newBaseService(options...),
		reservations: reservations,
		marker:       marker,
		grace:        grace,
		batch:        batch,
	}
}

var _ portssvc.NoShowSweeperSvc = (*noShowSweeper)(nil)

// RunOnce walks candidates page by page in (reservedFor, id) order until a page comes back short.
// Each candidate is visited once per run. Per-reservation failures are counted and logged;
// only a failed candidate listing aborts the run.
func (s *noShowSweeper) RunOnce(ctx context.Context) (portssvc.SweepResult, error) {
	var result portssvc.SweepResult
	now := s.now()
	before := now.Add(-s.grace)
	var after *domain.ReservationKey

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		candidates, err := readWithRetry(ctx, &s.BaseService, "list_no_show_candidates", func(ctx context.Context) ([]domain.Reservation, error) {
			return s.reservations.ListNoShowCandidates(ctx, before, after, s.batch)
		})
		if err != nil {
			s.LogError(ctx, err, "Failed to list no-show candidates")
			return result, err
		}

		for _, r := range candidates {
			result.Scanned++
			cutoff := r.ReservedFor.Add(s.grace)
			applied, err := s.marker.MarkDishonoredOnNoShow(ctx, r.ReservationID, cutoff, now)
			switch {
			case err != nil && (errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrIllegalTransition)):
				// Someone else moved it first.
				result.Skipped++
				s.LogWarn(ctx, err, "No-show lost race", slog.String("reservation_id", r.ReservationID))
			case err != nil:
				result.Failed++
				s.LogError(ctx, err, "Failed to mark no-show", slog.String("reservation_id", r.ReservationID))
			case applied:
				result.Dishonored++
			default:
				result.Skipped++
			}
		}

		if len(candidates) < s.batch {
			break
		}
		key := candidates[len(candidates)-1].Key()
		after = &key
	}

	s.LogInfo(ctx, "No-show sweep finished",
		slog.Time("cutoff_before", before),
		slog.Int("scanned", result.Scanned),
		slog.Int("dishonored", result.Dishonored),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed))
	return result, nil
}
