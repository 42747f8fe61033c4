// Package reporting holds the pure aggregation behind the statistics reports.
// Every function here works on already-loaded rows and never touches the store.
package reporting

import (
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UnassignedSpace is the bucket key for rows that carry no space.
const UnassignedSpace = "unassigned"

// DateKey returns the per-date bucket key of t in loc.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(domain.ReportDateLayout)
}

func spaceKey(spaceID string) string {
	if spaceID == "" {
		return UnassignedSpace
	}
	return spaceID
}

// clientTally accumulates visits of one bucket.
type clientTally struct {
	total   int
	clients map[string]struct{}
}

func (t *clientTally) add(clientID string) {
	t.total++
	if clientID == "" {
		return
	}
	if t.clients == nil {
		t.clients = make(map[string]struct{})
	}
	t.clients[clientID] = struct{}{}
}

// bucket resolves the tally; recurrent uses visit counts over the whole window.
func (t *clientTally) bucket(windowVisits map[string]int) domain.ClientsBucket {
	b := domain.ClientsBucket{Total: t.total, Unique: len(t.clients)}
	for id := range t.clients {
		if windowVisits[id] > 1 {
			b.Recurrent++
		}
	}
	return b
}

// BuildClientsReport counts visits per space and per date. A visit is a reservation in
// SERVE, SERVE_PREORDER or CLOSED. Anonymous visits count toward Total only.
func BuildClientsReport(restaurantID string, window domain.ReportWindow, reservations []domain.Reservation, loc *time.Location) domain.ClientsReports {
	bySpace := map[string]*clientTally{}
	byDate := map[string]*clientTally{}
	overall := &clientTally{}
	windowVisits := map[string]int{}

	for _, r := range reservations {
		if !r.Status.IsVisit() || !window.Contains(r.ReservedFor) {
			continue
		}
		tally(bySpace, spaceKey(r.SpaceID)).add(r.ClientID)
		tally(byDate, DateKey(r.ReservedFor, loc)).add(r.ClientID)
		overall.add(r.ClientID)
		if r.ClientID != "" {
			windowVisits[r.ClientID]++
		}
	}

	report := domain.ClientsReports{
		RestaurantID: restaurantID,
		Window:       window,
		BySpace:      make(map[string]domain.ClientsBucket, len(bySpace)),
		ByDate:       make(map[string]domain.ClientsBucket, len(byDate)),
		Overall:      overall.bucket(windowVisits),
	}
	for k, t := range bySpace {
		report.BySpace[k] = t.bucket(windowVisits)
	}
	for k, t := range byDate {
		report.ByDate[k] = t.bucket(windowVisits)
	}
	return report
}

func tally(m map[string]*clientTally, key string) *clientTally {
	t, ok := m[key]
	if !ok {
		t = &clientTally{}
		m[key] = t
	}
	return t
}

func addOutcome(b domain.ReservationsBucket, status domain.ReservationStatus) domain.ReservationsBucket {
	b.Total++
	switch status {
	case domain.StatusDishonored:
		b.Missed++
	case domain.StatusCancelled, domain.StatusRejected:
		b.Canceled++
	case domain.StatusClosed:
		b.Closed++
	}
	return b
}

// BuildReservationsReport counts reservations and their terminal outcomes per space and per date.
func BuildReservationsReport(restaurantID string, window domain.ReportWindow, reservations []domain.Reservation, loc *time.Location) domain.ReservationsReports {
	report := domain.ReservationsReports{
		RestaurantID: restaurantID,
		Window:       window,
		BySpace:      map[string]domain.ReservationsBucket{},
		ByDate:       map[string]domain.ReservationsBucket{},
	}
	for _, r := range reservations {
		if !window.Contains(r.ReservedFor) {
			continue
		}
		sk, dk := spaceKey(r.SpaceID), DateKey(r.ReservedFor, loc)
		report.BySpace[sk] = addOutcome(report.BySpace[sk], r.Status)
		report.ByDate[dk] = addOutcome(report.ByDate[dk], r.Status)
		report.Overall = addOutcome(report.Overall, r.Status)
	}
	return report
}

func addSale(b domain.SalesBucket, total decimal.Decimal) domain.SalesBucket {
	b.Total = b.Total.Add(total)
	b.Orders++
	return b
}

// BuildSalesReport sums paid and closed orders per space and per closing date.
func BuildSalesReport(restaurantID string, window domain.ReportWindow, orders []domain.Order, loc *time.Location) domain.SalesReport {
	report := domain.SalesReport{
		RestaurantID: restaurantID,
		Window:       window,
		BySpace:      map[string]domain.SalesBucket{},
		ByDate:       map[string]domain.SalesBucket{},
		Overall:      domain.SalesBucket{Total: decimal.Zero},
	}
	for _, o := range orders {
		if !o.Status.CountsAsSale() || !window.Contains(o.ClosedAt) {
			continue
		}
		sk, dk := spaceKey(o.SpaceID), DateKey(o.ClosedAt, loc)
		report.BySpace[sk] = addSale(report.BySpace[sk], o.Total)
		report.ByDate[dk] = addSale(report.ByDate[dk], o.Total)
		report.Overall = addSale(report.Overall, o.Total)
	}
	return report
}

// BuildRatingsReport averages the four review dimensions per date.
// Reviews with a dimension outside the rating scale are ignored.
func BuildRatingsReport(restaurantID string, window domain.ReportWindow, reviews []domain.Review, loc *time.Location) domain.RestaurantRating {
	byDate := map[string]*domain.RatingSums{}
	var overall domain.RatingSums

	for _, r := range reviews {
		if !r.InRange() || !window.Contains(r.CreatedAt) {
			continue
		}
		key := DateKey(r.CreatedAt, loc)
		sums, ok := byDate[key]
		if !ok {
			sums = &domain.RatingSums{}
			byDate[key] = sums
		}
		sums.Add(r)
		overall.Add(r)
	}

	report := domain.RestaurantRating{
		RestaurantID: restaurantID,
		Window:       window,
		ByDate:       make(map[string]domain.RatingBucket, len(byDate)),
		Overall:      overall.ToBucket(),
	}
	for k, sums := range byDate {
		report.ByDate[k] = sums.ToBucket()
	}
	return report
}
