package domain

import (
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxReportWindow bounds how far apart From and To may be.
const MaxReportWindow = 366 * 24 * time.Hour

// ReportDateLayout is the key format of per-date buckets.
const ReportDateLayout = "2006-01-02"

// ReportWindow is the half-open range [From, To) a report covers.
type ReportWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Validate checks the window is non-empty and not longer than MaxReportWindow.
func (w ReportWindow) Validate() error {
	if w.From.IsZero() || w.To.IsZero() {
		return apperrors.NewValidationFailedError("report window requires both from and to")
	}
	if !w.To.After(w.From) {
		return apperrors.NewValidationFailedError("report window 'to' must be after 'from'")
	}
	if w.To.Sub(w.From) > MaxReportWindow {
		return apperrors.NewValidationFailedError("report window must not exceed 366 days")
	}
	return nil
}

// Contains reports whether t falls inside [From, To).
func (w ReportWindow) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// ClientsBucket counts visits and the distinct clients behind them.
// Recurrent <= Unique <= Total always holds.
type ClientsBucket struct {
	Total     int `json:"total"`
	Unique    int `json:"unique"`
	Recurrent int `json:"recurrent"`
}

// ClientsReports is the clients rollup per space, per date and overall.
type ClientsReports struct {
	RestaurantID string                   `json:"restaurantID"`
	Window       ReportWindow             `json:"window"`
	BySpace      map[string]ClientsBucket `json:"bySpace"`
	ByDate       map[string]ClientsBucket `json:"byDate"`
	Overall      ClientsBucket            `json:"overall"`
}

// ReservationsBucket counts reservations and their terminal outcomes.
// Missed + Canceled + Closed <= Total always holds.
type ReservationsBucket struct {
	Total    int `json:"total"`
	Missed   int `json:"missed"`
	Canceled int `json:"canceled"`
	Closed   int `json:"closed"`
}

// ReservationsReports is the reservations rollup per space, per date and overall.
type ReservationsReports struct {
	RestaurantID string                        `json:"restaurantID"`
	Window       ReportWindow                  `json:"window"`
	BySpace      map[string]ReservationsBucket `json:"bySpace"`
	ByDate       map[string]ReservationsBucket `json:"byDate"`
	Overall      ReservationsBucket            `json:"overall"`
}

// SalesBucket sums the totals of paid or closed orders.
type SalesBucket struct {
	Total  decimal.Decimal `json:"total"`
	Orders int             `json:"orders"`
}

// SalesReport is the sales rollup per space, per date and overall.
type SalesReport struct {
	RestaurantID string                 `json:"restaurantID"`
	Window       ReportWindow           `json:"window"`
	BySpace      map[string]SalesBucket `json:"bySpace"`
	ByDate       map[string]SalesBucket `json:"byDate"`
	Overall      SalesBucket            `json:"overall"`
}

// RatingBucket holds per-dimension averages and the overall rating, all rounded to 2 decimals.
type RatingBucket struct {
	Food     float64 `json:"food"`
	Service  float64 `json:"service"`
	Price    float64 `json:"price"`
	Ambience float64 `json:"ambience"`
	Overall  float64 `json:"overall"`
	Reviews  int     `json:"reviews"`
}

// RestaurantRating is the ratings rollup per date and overall.
type RestaurantRating struct {
	RestaurantID string                  `json:"restaurantID"`
	Window       ReportWindow            `json:"window"`
	ByDate       map[string]RatingBucket `json:"byDate"`
	Overall      RatingBucket            `json:"overall"`
}
