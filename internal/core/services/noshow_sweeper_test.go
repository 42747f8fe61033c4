package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/ports"
	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationMarker struct {
	mock.Mock
}

func (m *MockReservationMarker) CreateReservation(ctx context.Context, restaurantID string, req dto.CreateReservationRequest, actor string) (*domain.Reservation, error) {
	args := m.Called(ctx, restaurantID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationMarker) Transition(ctx context.Context, reservationID string, target domain.ReservationStatus, actor string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID, target, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationMarker) MarkDishonoredOnNoShow(ctx context.Context, reservationID string, cutoff, now time.Time) (bool, error) {
	args := m.Called(ctx, reservationID, cutoff, now)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.ReservationWriterSvc = (*MockReservationMarker)(nil)

const grace = 30 * time.Minute

func candidate(id string, reservedFor time.Time) domain.Reservation {
	return domain.Reservation{ReservationID: id, RestaurantID: "rest-1", ReservedFor: reservedFor, Status: domain.StatusConfirmed}
}

var noKey = (*domain.ReservationKey)(nil)

func keyOf(r domain.Reservation) *domain.ReservationKey {
	k := r.Key()
	return &k
}

func TestNoShowSweeper_RunOnce_CountsOutcomes(t *testing.T) {
	now := dinner.Add(45 * time.Minute)
	reader := new(MockReservationRepository)
	marker := new(MockReservationMarker)
	sweeper := services.NewNoShowSweeper(reader, marker, grace, 10, services.WithClock(ports.FixedClock{At: now}))

	page := []domain.Reservation{
		candidate("r1", dinner),
		candidate("r2", dinner),
		candidate("r3", dinner.Add(10*time.Minute)),
		candidate("r4", dinner),
	}
	reader.On("ListNoShowCandidates", mock.Anything, now.Add(-grace), noKey, 10).Return(page, nil).Once()

	cutoff := dinner.Add(grace)
	marker.On("MarkDishonoredOnNoShow", mock.Anything, "r1", cutoff, now).Return(true, nil).Once()
	marker.On("MarkDishonoredOnNoShow", mock.Anything, "r2", cutoff, now).
		Return(false, apperrors.NewConflictError("reservation was modified concurrently")).Once()
	marker.On("MarkDishonoredOnNoShow", mock.Anything, "r3", cutoff.Add(10*time.Minute), now).Return(false, nil).Once()
	marker.On("MarkDishonoredOnNoShow", mock.Anything, "r4", cutoff, now).
		Return(false, errors.New("disk on fire")).Once()

	result, err := sweeper.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, portssvc.SweepResult{Scanned: 4, Dishonored: 1, Skipped: 2, Failed: 1}, result)
	reader.AssertExpectations(t)
	marker.AssertExpectations(t)
}

func TestNoShowSweeper_RunOnce_Pages(t *testing.T) {
	now := dinner.Add(time.Hour)
	reader := new(MockReservationRepository)
	marker := new(MockReservationMarker)
	sweeper := services.NewNoShowSweeper(reader, marker, grace, 2, services.WithClock(ports.FixedClock{At: now}))

	reader.On("ListNoShowCandidates", mock.Anything, now.Add(-grace), noKey, 2).
		Return([]domain.Reservation{candidate("r1", dinner), candidate("r2", dinner)}, nil).Once()
	reader.On("ListNoShowCandidates", mock.Anything, now.Add(-grace), keyOf(candidate("r2", dinner)), 2).
		Return([]domain.Reservation{candidate("r3", dinner)}, nil).Once()
	marker.On("MarkDishonoredOnNoShow", mock.Anything, mock.Anything, dinner.Add(grace), now).Return(true, nil)

	result, err := sweeper.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 3, result.Dishonored)
	reader.AssertNumberOfCalls(t, "ListNoShowCandidates", 2)
}

func TestNoShowSweeper_RunOnce_FailedPageDoesNotStallLaterCandidates(t *testing.T) {
	now := dinner.Add(time.Hour)
	reader := new(MockReservationRepository)
	marker := new(MockReservationMarker)
	sweeper := services.NewNoShowSweeper(reader, marker, grace, 2, services.WithClock(ports.FixedClock{At: now}))

	// r1 and r2 stay confirmed because every write fails, so a scan from the
	// start would return them again. The sweep must resume past them.
	failing := []domain.Reservation{candidate("r1", dinner), candidate("r2", dinner)}
	later := candidate("r3", dinner.Add(5*time.Minute))
	reader.On("ListNoShowCandidates", mock.Anything, now.Add(-grace), noKey, 2).Return(failing, nil).Once()
	reader.On("ListNoShowCandidates", mock.Anything, now.Add(-grace), keyOf(failing[1]), 2).
		Return([]domain.Reservation{later}, nil).Once()

	marker.On("MarkDishonoredOnNoShow", mock.Anything, "r1", dinner.Add(grace), now).
		Return(false, errors.New("disk on fire")).Once()
	marker.On("MarkDishonoredOnNoShow", mock.Anything, "r2", dinner.Add(grace), now).
		Return(false, errors.New("disk on fire")).Once()
	marker.On("MarkDishonoredOnNoShow", mock.Anything, "r3", later.ReservedFor.Add(grace), now).Return(true, nil).Once()

	result, err := sweeper.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, portssvc.SweepResult{Scanned: 3, Dishonored: 1, Failed: 2}, result)
	reader.AssertExpectations(t)
	marker.AssertExpectations(t)
}

func TestNoShowSweeper_RunOnce_SkippedPageStillAdvances(t *testing.T) {
	now := dinner.Add(time.Hour)
	reader := new(MockReservationRepository)
	marker := new(MockReservationMarker)
	sweeper := services.NewNoShowSweeper(reader, marker, grace, 1, services.WithClock(ports.FixedClock{At: now}))

	reader.On("ListNoShowCandidates", mock.Anything, now.Add(-grace), noKey, 1).
		Return([]domain.Reservation{candidate("r1", dinner)}, nil).Once()
	reader.On("ListNoShowCandidates", mock.Anything, now.Add(-grace), keyOf(candidate("r1", dinner)), 1).
		Return([]domain.Reservation{}, nil).Once()
	marker.On("MarkDishonoredOnNoShow", mock.Anything, "r1", dinner.Add(grace), now).
		Return(false, apperrors.NewIllegalTransitionError("SERVE", "DISHONORED")).Once()

	result, err := sweeper.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, portssvc.SweepResult{Scanned: 1, Skipped: 1}, result)
	reader.AssertNumberOfCalls(t, "ListNoShowCandidates", 2)
}

func TestNoShowSweeper_RunOnce_ListFailure(t *testing.T) {
	reader := new(MockReservationRepository)
	marker := new(MockReservationMarker)
	sweeper := services.NewNoShowSweeper(reader, marker, grace, 0, services.WithClock(ports.FixedClock{At: dinner}))

	reader.On("ListNoShowCandidates", mock.Anything, mock.Anything, noKey, 200).
		Return(nil, apperrors.NewStorageUnavailableError("database unreachable", assertErr))

	_, err := sweeper.RunOnce(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	// One retry for reads.
	reader.AssertNumberOfCalls(t, "ListNoShowCandidates", 2)
	marker.AssertNotCalled(t, "MarkDishonoredOnNoShow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNoShowSweeper_EndToEndWithService(t *testing.T) {
	now := dinner.Add(time.Hour)
	clock := ports.FixedClock{At: now}
	store := newMemReservations(candidate("r1", dinner))
	sink := &recordingSink{}
	svc := services.NewReservationService(store, new(MockHistoryRepository), sink, services.WithClock(clock))

	reader := new(MockReservationRepository)
	reader.On("ListNoShowCandidates", mock.Anything, now.Add(-grace), noKey, 50).
		Return([]domain.Reservation{candidate("r1", dinner)}, nil)
	sweeper := services.NewNoShowSweeper(reader, svc, grace, 50, services.WithClock(clock))

	result, err := sweeper.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Dishonored)
	stored, _ := store.FindReservationByID(context.Background(), "r1")
	assert.Equal(t, domain.StatusDishonored, stored.Status)
	require.Len(t, sink.records, 1)
	assert.Equal(t, domain.StatusConfirmed, sink.records[0].FromStatus)
	assert.Equal(t, services.NoShowActor, sink.records[0].Actor)
}
