package services

import (
	"context"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
)

// ReportingService defines the read-only statistics rollups of a restaurant
type ReportingService interface {
	// ClientsReport counts visits, distinct clients and returning clients per space and per date
	ClientsReport(ctx context.Context, restaurantID string, window domain.ReportWindow) (*domain.ClientsReports, error)

	// ReservationsReport counts reservations and their missed, canceled and closed outcomes
	ReservationsReport(ctx context.Context, restaurantID string, window domain.ReportWindow) (*domain.ReservationsReports, error)

	// SalesReport sums paid and closed orders
	SalesReport(ctx context.Context, restaurantID string, window domain.ReportWindow) (*domain.SalesReport, error)

	// RatingsReport averages review dimensions per date
	RatingsReport(ctx context.Context, restaurantID string, window domain.ReportWindow) (*domain.RestaurantRating, error)
}
