package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/dto"
	"github.com/google/uuid"
)

// NoShowActor is recorded as the actor of transitions made by the no-show sweep.
const NoShowActor = "system:no-show-sweep"

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type reservationService struct {
	BaseService
	reservationRepo portsrepo.ReservationRepositoryFacade
	historyRepo     portsrepo.ReservationHistoryReader
	audit           portsrepo.AuditSink
}

// NewReservationService creates the reservation state machine service.
// audit receives one record per status change; its failures never fail the change itself.
func NewReservationService(
	reservationRepo portsrepo.ReservationRepositoryFacade,
	historyRepo portsrepo.ReservationHistoryReader,
	audit portsrepo.AuditSink,
	options ...ServiceOption,
) portssvc.ReservationSvcFacade {
	if audit == nil {
		audit = NewMultiAuditSink()
	}
	return &reservationService{
		BaseService:     newBaseService(options...),
		reservationRepo: reservationRepo,
		historyRepo:     historyRepo,
		audit:           audit,
	}
}

var _ portssvc.ReservationSvcFacade = (*reservationService)(nil)

// CreateReservation stores a new reservation in its initial pending state.
func (s *reservationService) CreateReservation(ctx context.Context, restaurantID string, req dto.CreateReservationRequest, actor string) (*domain.Reservation, error) {
	now := s.now()
	r := domain.Reservation{
		ReservationID: uuid.NewString(),
		RestaurantID:  restaurantID,
		SpaceID:       req.SpaceID,
		ClientID:      strings.TrimSpace(req.ClientID),
		GuestCount:    req.GuestCount,
		ReservedFor:   req.ReservedFor.UTC(),
		Status:        domain.InitialReservationStatus(req.Preorder),
		Notes:         req.Notes,
		AuditFields:   domain.NewAuditFields(actor, now),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	callCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()
	if err := storeError(s.reservationRepo.SaveReservation(callCtx, r)); err != nil {
		s.logFailure(ctx, err, "Failed to save reservation", slog.String("restaurant_id", restaurantID))
		return nil, err
	}

	s.appendAudit(ctx, domain.ReservationHistoryRecord{
		RecordID:      newRecordID(),
		ReservationID: r.ReservationID,
		RestaurantID:  r.RestaurantID,
		ToStatus:      r.Status,
		Actor:         actor,
		OccurredAt:    now,
	})

	s.LogInfo(ctx, "Reservation created",
		slog.String("reservation_id", r.ReservationID),
		slog.String("status", string(r.Status)))
	return &r, nil
}

// GetReservation retrieves a reservation by its ID.
func (s *reservationService) GetReservation(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	r, err := readWithRetry(ctx, &s.BaseService, "get_reservation", func(ctx context.Context) (*domain.Reservation, error) {
		return s.reservationRepo.FindReservationByID(ctx, reservationID)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to get reservation", slog.String("reservation_id", reservationID))
		return nil, err
	}
	return r, nil
}

// ListReservations returns one page of reservations matching filter.
func (s *reservationService) ListReservations(ctx context.Context, filter domain.ReservationFilter, limit int, nextToken *string) ([]domain.Reservation, *string, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, nil, apperrors.NewValidationFailedError("unknown reservation status: " + string(*filter.Status))
	}
	if filter.From != nil && filter.To != nil && !filter.To.After(*filter.From) {
		return nil, nil, apperrors.NewValidationFailedError("'to' must be after 'from'")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	type page struct {
		items []domain.Reservation
		next  *string
	}
	p, err := readWithRetry(ctx, &s.BaseService, "list_reservations", func(ctx context.Context) (page, error) {
		items, next, err := s.reservationRepo.ListReservations(ctx, filter, limit, nextToken)
		return page{items: items, next: next}, err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to list reservations", slog.String("restaurant_id", filter.RestaurantID))
		return nil, nil, err
	}
	if p.items == nil {
		p.items = []domain.Reservation{}
	}
	return p.items, p.next, nil
}

// GetHistory returns the status log of a reservation, oldest first.
func (s *reservationService) GetHistory(ctx context.Context, reservationID string) ([]domain.ReservationHistoryRecord, error) {
	if _, err := s.GetReservation(ctx, reservationID); err != nil {
		return nil, err
	}
	records, err := readWithRetry(ctx, &s.BaseService, "list_history", func(ctx context.Context) ([]domain.ReservationHistoryRecord, error) {
		return s.historyRepo.ListHistory(ctx, reservationID)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to list reservation history", slog.String("reservation_id", reservationID))
		return nil, err
	}
	if records == nil {
		return []domain.ReservationHistoryRecord{}, nil
	}
	return records, nil
}

// Transition moves the reservation to target if the transition table allows it.
func (s *reservationService) Transition(ctx context.Context, reservationID string, target domain.ReservationStatus, actor string) (*domain.Reservation, error) {
	if !target.IsValid() {
		return nil, apperrors.NewValidationFailedError("unknown reservation status: " + string(target))
	}

	callCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	r, err := s.reservationRepo.FindReservationByID(callCtx, reservationID)
	if err != nil {
		err = storeError(err)
		s.logFailure(ctx, err, "Failed to load reservation for transition", slog.String("reservation_id", reservationID))
		return nil, err
	}

	if err := s.apply(callCtx, r, target, actor); err != nil {
		s.logFailure(ctx, err, "Reservation transition rejected",
			slog.String("reservation_id", reservationID),
			slog.String("from", string(r.Status)),
			slog.String("to", string(target)))
		return nil, err
	}
	return r, nil
}

// MarkDishonoredOnNoShow is a no-op unless the reservation is confirmed and now has reached cutoff.
func (s *reservationService) MarkDishonoredOnNoShow(ctx context.Context, reservationID string, cutoff, now time.Time) (bool, error) {
	callCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	r, err := s.reservationRepo.FindReservationByID(callCtx, reservationID)
	if err != nil {
		return false, storeError(err)
	}
	if !r.Status.IsConfirmed() || now.Before(cutoff) {
		s.LogDebug(ctx, "Reservation not eligible for no-show",
			slog.String("reservation_id", reservationID),
			slog.String("status", string(r.Status)))
		return false, nil
	}

	if err := s.apply(callCtx, r, domain.StatusDishonored, NoShowActor); err != nil {
		return false, err
	}
	return true, nil
}

// apply performs a checked compare-and-swap status change on r and audits it.
// On success r reflects the stored state.
func (s *reservationService) apply(ctx context.Context, r *domain.Reservation, target domain.ReservationStatus, actor string) error {
	from := r.Status
	if !domain.CanTransition(from, target) {
		return apperrors.NewIllegalTransitionError(string(from), string(target))
	}

	now := s.now()
	next := *r
	next.Status = target
	next.Touch(actor, now)
	if err := s.reservationRepo.UpdateReservationStatus(ctx, next, r.Version); err != nil {
		return storeError(err)
	}
	next.Version = r.Version + 1
	*r = next

	s.appendAudit(ctx, domain.ReservationHistoryRecord{
		RecordID:      newRecordID(),
		ReservationID: r.ReservationID,
		RestaurantID:  r.RestaurantID,
		FromStatus:    from,
		ToStatus:      target,
		Actor:         actor,
		OccurredAt:    now,
	})

	s.LogInfo(ctx, "Reservation status changed",
		slog.String("reservation_id", r.ReservationID),
		slog.String("from", string(from)),
		slog.String("to", string(target)),
		slog.String("actor", actor))
	return nil
}

// appendAudit writes a history record. The state change is already committed, so the caller's
// cancellation must not drop the record; failures are logged and swallowed.
func (s *reservationService) appendAudit(ctx context.Context, record domain.ReservationHistoryRecord) {
	auditCtx, cancel := s.withStoreTimeout(context.WithoutCancel(ctx))
	defer cancel()
	if err := s.audit.Append(auditCtx, record); err != nil {
		s.LogWarn(ctx, err, "Failed to append reservation history",
			slog.String("reservation_id", record.ReservationID),
			slog.String("to_status", string(record.ToStatus)))
	}
}

// newRecordID returns a time-ordered id so records sharing a timestamp still sort in append order.
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
