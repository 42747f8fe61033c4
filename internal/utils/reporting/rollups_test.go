package reporting

import (
	"testing"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	d1     = time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	d2     = time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC)
	window = domain.ReportWindow{
		From: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
	}
)

func res(space, client string, at time.Time, status domain.ReservationStatus) domain.Reservation {
	return domain.Reservation{SpaceID: space, ClientID: client, ReservedFor: at, Status: status}
}

func TestBuildClientsReport(t *testing.T) {
	rows := []domain.Reservation{
		res("hall", "alice", d1, domain.StatusClosed),
		res("hall", "bob", d1, domain.StatusServe),
		res("terrace", "alice", d2, domain.StatusServePreorder),
		res("terrace", "", d2, domain.StatusClosed),             // anonymous walk-in
		res("hall", "carol", d2, domain.StatusCancelled),        // not a visit
		res("hall", "dave", d2, domain.StatusDishonored),        // not a visit
		res("hall", "alice", d1.AddDate(0, 1, 0), domain.StatusClosed), // outside window
	}

	report := BuildClientsReport("r1", window, rows, time.UTC)

	assert.Equal(t, domain.ClientsBucket{Total: 4, Unique: 2, Recurrent: 1}, report.Overall)
	assert.Equal(t, domain.ClientsBucket{Total: 2, Unique: 2, Recurrent: 1}, report.BySpace["hall"])
	assert.Equal(t, domain.ClientsBucket{Total: 2, Unique: 1, Recurrent: 1}, report.BySpace["terrace"])
	assert.Equal(t, domain.ClientsBucket{Total: 2, Unique: 2, Recurrent: 1}, report.ByDate["2025-06-01"])
	assert.Equal(t, domain.ClientsBucket{Total: 2, Unique: 1, Recurrent: 1}, report.ByDate["2025-06-02"])

	for _, buckets := range []map[string]domain.ClientsBucket{report.BySpace, report.ByDate} {
		for key, b := range buckets {
			assert.LessOrEqualf(t, b.Recurrent, b.Unique, "bucket %s", key)
			assert.LessOrEqualf(t, b.Unique, b.Total, "bucket %s", key)
		}
	}
}

func TestBuildClientsReport_Empty(t *testing.T) {
	report := BuildClientsReport("r1", window, nil, time.UTC)
	assert.Empty(t, report.BySpace)
	assert.Empty(t, report.ByDate)
	assert.Equal(t, domain.ClientsBucket{}, report.Overall)
}

func TestBuildReservationsReport(t *testing.T) {
	rows := []domain.Reservation{
		res("hall", "a", d1, domain.StatusClosed),
		res("hall", "b", d1, domain.StatusDishonored),
		res("hall", "c", d1, domain.StatusCancelled),
		res("hall", "d", d1, domain.StatusRejected),
		res("", "e", d2, domain.StatusConfirmed),
	}

	report := BuildReservationsReport("r1", window, rows, time.UTC)

	assert.Equal(t, domain.ReservationsBucket{Total: 5, Missed: 1, Canceled: 2, Closed: 1}, report.Overall)
	assert.Equal(t, domain.ReservationsBucket{Total: 4, Missed: 1, Canceled: 2, Closed: 1}, report.BySpace["hall"])
	assert.Equal(t, domain.ReservationsBucket{Total: 1}, report.BySpace[UnassignedSpace])
	assert.Equal(t, domain.ReservationsBucket{Total: 1}, report.ByDate["2025-06-02"])

	b := report.Overall
	assert.LessOrEqual(t, b.Missed+b.Canceled+b.Closed, b.Total)
}

func TestBuildSalesReport(t *testing.T) {
	orders := []domain.Order{
		{SpaceID: "hall", Status: domain.OrderPaid, Total: decimal.RequireFromString("120.50"), ClosedAt: d1},
		{SpaceID: "hall", Status: domain.OrderClosed, Total: decimal.RequireFromString("79.50"), ClosedAt: d2},
		{SpaceID: "hall", Status: domain.OrderOpen, Total: decimal.RequireFromString("999"), ClosedAt: d2},
		{SpaceID: "bar", Status: domain.OrderCancelled, Total: decimal.RequireFromString("10"), ClosedAt: d2},
	}

	report := BuildSalesReport("r1", window, orders, time.UTC)

	assert.True(t, decimal.RequireFromString("200").Equal(report.Overall.Total), report.Overall.Total.String())
	assert.Equal(t, 2, report.Overall.Orders)
	assert.True(t, decimal.RequireFromString("200").Equal(report.BySpace["hall"].Total))
	assert.True(t, decimal.RequireFromString("120.5").Equal(report.ByDate["2025-06-01"].Total))
	_, hasBar := report.BySpace["bar"]
	assert.False(t, hasBar)
}

func TestBuildRatingsReport(t *testing.T) {
	reviews := []domain.Review{
		{Food: 8, Service: 7, Price: 8, Ambience: 6, CreatedAt: d1},
		{Food: 8, Service: 7, Price: 7, Ambience: 7, CreatedAt: d1},
		{Food: 8, Service: 7, Price: 8, Ambience: 6, CreatedAt: d1},
		{Food: 8, Service: 7, Price: 7, Ambience: 7, CreatedAt: d1},
		{Food: 11, Service: 7, Price: 7, Ambience: 7, CreatedAt: d2}, // out of scale
	}

	report := BuildRatingsReport("r1", window, reviews, time.UTC)

	day, ok := report.ByDate["2025-06-01"]
	require.True(t, ok)
	assert.Equal(t, 4, day.Reviews)
	assert.InDelta(t, 7.25, day.Overall, 1e-9)
	assert.InDelta(t, 8.0, day.Food, 1e-9)
	assert.InDelta(t, 7.5, day.Price, 1e-9)
	assert.InDelta(t, 7.25, report.Overall.Overall, 1e-9)

	_, ok = report.ByDate["2025-06-02"]
	assert.False(t, ok)
}

func TestBuildRatingsReport_NoReviews(t *testing.T) {
	report := BuildRatingsReport("r1", window, nil, time.UTC)
	assert.Equal(t, 0.0, report.Overall.Overall)
	assert.Equal(t, 0, report.Overall.Reviews)
}

func TestDateKey_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	late := time.Date(2025, 6, 1, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-01", DateKey(late, time.UTC))
	assert.Equal(t, "2025-06-02", DateKey(late, loc))
	assert.Equal(t, "2025-06-01", DateKey(late, nil))
}
