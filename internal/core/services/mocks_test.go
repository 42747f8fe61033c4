package services_test

import (
	"context"
	"errors"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Staff ---

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy so the service cannot mutate the fixture.
	s := *args.Get(0).(*domain.StaffMember)
	return &s, args.Error(1)
}

func (m *MockStaffRepository) SaveStaff(ctx context.Context, staff domain.StaffMember) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) UpdateCurrentSchedule(ctx context.Context, staffID string, scheduleID *string, actor string, expectedVersion int64) error {
	args := m.Called(ctx, staffID, scheduleID, actor, expectedVersion)
	return args.Error(0)
}

var _ portsrepo.StaffRepositoryFacade = (*MockStaffRepository)(nil)

// --- Schedule ---

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	s := *args.Get(0).(*domain.Schedule)
	return &s, args.Error(1)
}

func (m *MockScheduleRepository) ListOverlappingActiveSchedules(ctx context.Context, staffID string, start, end time.Time) ([]domain.Schedule, error) {
	args := m.Called(ctx, staffID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) ListSchedulesByRestaurant(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Schedule, error) {
	args := m.Called(ctx, restaurantID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) UpdateSchedule(ctx context.Context, schedule domain.Schedule, expectedVersion int64) error {
	args := m.Called(ctx, schedule, expectedVersion)
	return args.Error(0)
}

var _ portsrepo.ScheduleRepositoryFacade = (*MockScheduleRepository)(nil)

// --- Reservation ---

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	r := *args.Get(0).(*domain.Reservation)
	return &r, args.Error(1)
}

func (m *MockReservationRepository) ListReservations(ctx context.Context, filter domain.ReservationFilter, limit int, nextToken *string) ([]domain.Reservation, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Reservation), next, args.Error(2)
}

func (m *MockReservationRepository) ListNoShowCandidates(ctx context.Context, before time.Time, after *domain.ReservationKey, limit int) ([]domain.Reservation, error) {
	args := m.Called(ctx, before, after, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) UpdateReservationStatus(ctx context.Context, reservation domain.Reservation, expectedVersion int64) error {
	args := m.Called(ctx, reservation, expectedVersion)
	return args.Error(0)
}

var _ portsrepo.ReservationRepositoryFacade = (*MockReservationRepository)(nil)

// --- History / audit ---

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) ListHistory(ctx context.Context, reservationID string) ([]domain.ReservationHistoryRecord, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReservationHistoryRecord), args.Error(1)
}

func (m *MockHistoryRepository) Append(ctx context.Context, record domain.ReservationHistoryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

var _ portsrepo.ReservationHistoryRepositoryFacade = (*MockHistoryRepository)(nil)

// --- Reporting ---

type MockReportingReader struct {
	mock.Mock
}

func (m *MockReportingReader) ListReservationsInWindow(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Reservation, error) {
	args := m.Called(ctx, restaurantID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReportingReader) ListOrdersInWindow(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Order, error) {
	args := m.Called(ctx, restaurantID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockReportingReader) ListReviewsInWindow(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Review, error) {
	args := m.Called(ctx, restaurantID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

var _ portsrepo.ReportingReader = (*MockReportingReader)(nil)

// --- Transactions ---

// passThroughTx runs the unit of work directly and counts invocations.
type passThroughTx struct {
	calls int
}

func (t *passThroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

var _ portsrepo.TransactionManager = (*passThroughTx)(nil)

var assertErr = errors.New("connection reset by peer")

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
