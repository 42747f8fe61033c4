package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/ports"
	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var dinner = time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC)

// memReservations is a versioned in-memory store with compare-and-swap updates.
type memReservations struct {
	mu   sync.Mutex
	rows map[string]domain.Reservation
}

func newMemReservations(rows ...domain.Reservation) *memReservations {
	m := &memReservations{rows: map[string]domain.Reservation{}}
	for _, r := range rows {
		m.rows[r.ReservationID] = r
	}
	return m
}

func (m *memReservations) FindReservationByID(_ context.Context, id string) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("reservation not found")
	}
	return &r, nil
}

func (m *memReservations) ListReservations(context.Context, domain.ReservationFilter, int, *string) ([]domain.Reservation, *string, error) {
	return nil, nil, nil
}

func (m *memReservations) ListNoShowCandidates(context.Context, time.Time, *domain.ReservationKey, int) ([]domain.Reservation, error) {
	return nil, nil
}

func (m *memReservations) SaveReservation(_ context.Context, r domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[r.ReservationID] = r
	return nil
}

func (m *memReservations) UpdateReservationStatus(_ context.Context, r domain.Reservation, expectedVersion int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.rows[r.ReservationID]
	if !ok {
		return apperrors.NewNotFoundError("reservation not found")
	}
	if stored.Version != expectedVersion {
		return apperrors.NewConflictError("reservation was modified concurrently")
	}
	r.Version = expectedVersion + 1
	m.rows[r.ReservationID] = r
	return nil
}

// recordingSink collects appended history records.
type recordingSink struct {
	mu      sync.Mutex
	records []domain.ReservationHistoryRecord
	err     error
}

func (s *recordingSink) Append(_ context.Context, record domain.ReservationHistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, record)
	return nil
}

func (s *recordingSink) statuses() []domain.ReservationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ReservationStatus, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.ToStatus)
	}
	return out
}

func confirmedReservation(id string) domain.Reservation {
	return domain.Reservation{
		ReservationID: id,
		RestaurantID:  "rest-1",
		SpaceID:       "hall",
		ClientID:      "client-1",
		GuestCount:    2,
		ReservedFor:   dinner,
		Status:        domain.StatusConfirmed,
		AuditFields:   domain.AuditFields{Version: 4},
	}
}

type ReservationServiceTestSuite struct {
	suite.Suite
	store   *memReservations
	history *MockHistoryRepository
	sink    *recordingSink
	clock   ports.FixedClock
	service portssvc.ReservationSvcFacade
}

func (suite *ReservationServiceTestSuite) SetupTest() {
	suite.store = newMemReservations()
	suite.history = new(MockHistoryRepository)
	suite.sink = &recordingSink{}
	suite.clock = ports.FixedClock{At: dinner.Add(-2 * time.Hour)}
	suite.service = services.NewReservationService(suite.store, suite.history, suite.sink, services.WithClock(suite.clock))
}

func (suite *ReservationServiceTestSuite) TestLifecycleScenario() {
	ctx := context.Background()

	created, err := suite.service.CreateReservation(ctx, "rest-1", dto.CreateReservationRequest{
		SpaceID:     "hall",
		ClientID:    " client-1 ",
		GuestCount:  4,
		ReservedFor: dinner,
	}, "host-1")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, created.Status)
	suite.Equal("client-1", created.ClientID)
	id := created.ReservationID

	_, err = suite.service.Transition(ctx, id, domain.StatusConfirmed, "host-1")
	suite.Require().NoError(err)

	_, err = suite.service.Transition(ctx, id, domain.StatusServePreorder, "host-1")
	suite.ErrorIs(err, apperrors.ErrIllegalTransition)

	_, err = suite.service.Transition(ctx, id, domain.StatusServe, "waiter-1")
	suite.Require().NoError(err)

	closed, err := suite.service.Transition(ctx, id, domain.StatusClosed, "waiter-1")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusClosed, closed.Status)
	suite.Equal("waiter-1", closed.LastUpdatedBy)

	_, err = suite.service.Transition(ctx, id, domain.StatusCancelled, "host-1")
	suite.ErrorIs(err, apperrors.ErrIllegalTransition)

	suite.Equal([]domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusServe,
		domain.StatusClosed,
	}, suite.sink.statuses())
	suite.Empty(suite.sink.records[0].FromStatus)
	suite.Equal(domain.StatusConfirmed, suite.sink.records[2].FromStatus)

	stored, _ := suite.store.FindReservationByID(ctx, id)
	suite.Equal(domain.StatusClosed, stored.Status)
	suite.Equal(closed.Version, stored.Version)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_Preorder() {
	created, err := suite.service.CreateReservation(context.Background(), "rest-1", dto.CreateReservationRequest{
		SpaceID:     "terrace",
		GuestCount:  2,
		ReservedFor: dinner,
		Preorder:    true,
	}, "host-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPendingPreorder, created.Status)
	suite.Equal(int64(1), created.Version)
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_Invalid() {
	_, err := suite.service.CreateReservation(context.Background(), "rest-1", dto.CreateReservationRequest{
		SpaceID:     "hall",
		GuestCount:  0,
		ReservedFor: dinner,
	}, "host-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Empty(suite.sink.records)
}

func (suite *ReservationServiceTestSuite) TestTransition_SameTargetTwice() {
	suite.store = newMemReservations(confirmedReservation("res-1"))
	suite.service = services.NewReservationService(suite.store, suite.history, suite.sink, services.WithClock(suite.clock))

	_, err := suite.service.Transition(context.Background(), "res-1", domain.StatusServe, "waiter-1")
	suite.Require().NoError(err)

	_, err = suite.service.Transition(context.Background(), "res-1", domain.StatusServe, "waiter-1")
	suite.ErrorIs(err, apperrors.ErrIllegalTransition)
	suite.Len(suite.sink.records, 1)
}

func (suite *ReservationServiceTestSuite) TestTransition_UnknownTarget() {
	_, err := suite.service.Transition(context.Background(), "res-1", domain.ReservationStatus("SERVE_PREORDER "), "waiter-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReservationServiceTestSuite) TestTransition_NotFound() {
	_, err := suite.service.Transition(context.Background(), "missing", domain.StatusConfirmed, "host-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReservationServiceTestSuite) TestTransition_AuditFailureIsSuppressed() {
	suite.store = newMemReservations(confirmedReservation("res-1"))
	suite.sink.err = errors.New("audit store down")
	suite.service = services.NewReservationService(suite.store, suite.history, suite.sink, services.WithClock(suite.clock))

	r, err := suite.service.Transition(context.Background(), "res-1", domain.StatusCancelled, "client-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, r.Status)
	stored, _ := suite.store.FindReservationByID(context.Background(), "res-1")
	suite.Equal(domain.StatusCancelled, stored.Status)
}

func (suite *ReservationServiceTestSuite) TestTransition_ConflictAndTimeoutWithMock() {
	repo := new(MockReservationRepository)
	svc := services.NewReservationService(repo, suite.history, suite.sink, services.WithClock(suite.clock))
	fixture := confirmedReservation("res-1")

	repo.On("FindReservationByID", mock.Anything, "res-1").Return(&fixture, nil)
	repo.On("UpdateReservationStatus", mock.Anything, mock.Anything, int64(4)).
		Return(apperrors.NewConflictError("reservation was modified concurrently")).Once()
	repo.On("UpdateReservationStatus", mock.Anything, mock.Anything, int64(4)).
		Return(context.DeadlineExceeded).Once()

	_, err := svc.Transition(context.Background(), "res-1", domain.StatusServe, "waiter-1")
	suite.ErrorIs(err, apperrors.ErrConflict)

	_, err = svc.Transition(context.Background(), "res-1", domain.StatusServe, "waiter-1")
	suite.ErrorIs(err, apperrors.ErrStorageUnavailable)

	suite.Empty(suite.sink.records)
	repo.AssertExpectations(suite.T())
}

// Two writers race from the same version; exactly one wins.
func (suite *ReservationServiceTestSuite) TestTransition_ConcurrentWritersOneWins() {
	suite.store = newMemReservations(confirmedReservation("res-1"))

	start := make(chan struct{})
	results := make(chan error, 2)
	var loaded sync.WaitGroup
	loaded.Add(2)

	for _, target := range []domain.ReservationStatus{domain.StatusServe, domain.StatusCancelled} {
		go func(target domain.ReservationStatus) {
			r, _ := suite.store.FindReservationByID(context.Background(), "res-1")
			loaded.Done()
			<-start
			next := *r
			next.Status = target
			results <- suite.store.UpdateReservationStatus(context.Background(), next, r.Version)
		}(target)
	}
	loaded.Wait()
	close(start)

	var wins, conflicts int
	for i := 0; i < 2; i++ {
		err := <-results
		switch {
		case err == nil:
			wins++
		case errors.Is(err, apperrors.ErrConflict):
			conflicts++
		}
	}
	suite.Equal(1, wins)
	suite.Equal(1, conflicts)
}

func (suite *ReservationServiceTestSuite) TestMarkDishonoredOnNoShow() {
	cutoff := dinner.Add(30 * time.Minute)
	tests := []struct {
		name    string
		status  domain.ReservationStatus
		now     time.Time
		applied bool
		final   domain.ReservationStatus
	}{
		{"confirmed past cutoff", domain.StatusConfirmed, cutoff.Add(time.Minute), true, domain.StatusDishonored},
		{"confirmed preorder at cutoff", domain.StatusConfirmedPreorder, cutoff, true, domain.StatusDishonored},
		{"confirmed before cutoff", domain.StatusConfirmed, cutoff.Add(-time.Second), false, domain.StatusConfirmed},
		{"already served", domain.StatusServe, cutoff.Add(time.Hour), false, domain.StatusServe},
		{"pending", domain.StatusPending, cutoff.Add(time.Hour), false, domain.StatusPending},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			r := confirmedReservation("res-1")
			r.Status = tt.status
			suite.store = newMemReservations(r)
			suite.service = services.NewReservationService(suite.store, suite.history, suite.sink, services.WithClock(suite.clock))

			applied, err := suite.service.MarkDishonoredOnNoShow(context.Background(), "res-1", cutoff, tt.now)

			suite.Require().NoError(err)
			suite.Equal(tt.applied, applied)
			stored, _ := suite.store.FindReservationByID(context.Background(), "res-1")
			suite.Equal(tt.final, stored.Status)
			if tt.applied {
				suite.Require().Len(suite.sink.records, 1)
				suite.Equal(services.NoShowActor, suite.sink.records[0].Actor)
				suite.Equal(services.NoShowActor, stored.LastUpdatedBy)
			} else {
				suite.Empty(suite.sink.records)
			}
		})
	}
}

func (suite *ReservationServiceTestSuite) TestGetHistory() {
	ctx := context.Background()
	suite.store = newMemReservations(confirmedReservation("res-1"))
	suite.service = services.NewReservationService(suite.store, suite.history, suite.sink, services.WithClock(suite.clock))
	records := []domain.ReservationHistoryRecord{
		{RecordID: "h1", ReservationID: "res-1", ToStatus: domain.StatusPending},
		{RecordID: "h2", ReservationID: "res-1", FromStatus: domain.StatusPending, ToStatus: domain.StatusConfirmed},
	}
	suite.history.On("ListHistory", mock.Anything, "res-1").Return(records, nil).Once()

	got, err := suite.service.GetHistory(ctx, "res-1")
	suite.Require().NoError(err)
	suite.Equal(records, got)

	_, err = suite.service.GetHistory(ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.history.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestListReservations_ClampsLimitAndValidates() {
	repo := new(MockReservationRepository)
	svc := services.NewReservationService(repo, suite.history, suite.sink)
	filter := domain.ReservationFilter{RestaurantID: "rest-1"}
	repo.On("ListReservations", mock.Anything, filter, 100, (*string)(nil)).Return(nil, nil, nil).Once()

	items, next, err := svc.ListReservations(context.Background(), filter, 1000, nil)
	suite.Require().NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
	suite.Nil(next)

	bad := domain.ReservationStatus("LOST")
	_, _, err = svc.ListReservations(context.Background(), domain.ReservationFilter{RestaurantID: "rest-1", Status: &bad}, 10, nil)
	suite.ErrorIs(err, apperrors.ErrValidation)

	from, to := dinner, dinner.Add(-time.Hour)
	_, _, err = svc.ListReservations(context.Background(), domain.ReservationFilter{RestaurantID: "rest-1", From: &from, To: &to}, 10, nil)
	suite.ErrorIs(err, apperrors.ErrValidation)
	repo.AssertExpectations(suite.T())
}

func TestReservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}
