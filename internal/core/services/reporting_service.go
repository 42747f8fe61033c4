package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/utils/reporting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingReader
	location      *time.Location
}

// NewReportingService creates a new reporting service. loc decides the calendar day of per-date buckets.
func NewReportingService(repo portsrepo.ReportingReader, loc *time.Location, options ...ServiceOption) portssvc.ReportingService {
	if loc == nil {
		loc = time.UTC
	}
	return &reportingService{
		BaseService:   newBaseService(options...),
		reportingRepo: repo,
		location:      loc,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// ClientsReport generates the clients rollup
func (s *reportingService) ClientsReport(ctx context.Context, restaurantID string, window domain.ReportWindow) (*domain.ClientsReports, error) {
	rows, err := s.reservations(ctx, restaurantID, window)
	if err != nil {
		return nil, err
	}
	report := reporting.BuildClientsReport(restaurantID, window, rows, s.location)

	s.LogInfo(ctx, "Clients report generated",
		slog.String("restaurant_id", restaurantID),
		slog.Int("visits", report.Overall.Total))
	return &report, nil
}

// ReservationsReport generates the reservations rollup
func (s *reportingService) ReservationsReport(ctx context.Context, restaurantID string, window domain.ReportWindow) (*domain.ReservationsReports, error) {
	rows, err := s.reservations(ctx, restaurantID, window)
	if err != nil {
		return nil, err
	}
	report := reporting.BuildReservationsReport(restaurantID, window, rows, s.location)

	s.LogInfo(ctx, "Reservations report generated",
		slog.String("restaurant_id", restaurantID),
		slog.Int("reservations", report.Overall.Total))
	return &report, nil
}

// SalesReport generates the sales rollup
func (s *reportingService) SalesReport(ctx context.Context, restaurantID string, window domain.ReportWindow) (*domain.SalesReport, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	orders, err := readWithRetry(ctx, &s.BaseService, "orders_in_window", func(ctx context.Context) ([]domain.Order, error) {
		return s.reportingRepo.ListOrdersInWindow(ctx, restaurantID, window)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve orders for sales report",
			slog.String("restaurant_id", restaurantID),
			slog.String("from", window.From.Format(time.RFC3339)),
			slog.String("to", window.To.Format(time.RFC3339)))
		return nil, err
	}
	report := reporting.BuildSalesReport(restaurantID, window, orders, s.location)

	s.LogInfo(ctx, "Sales report generated",
		slog.String("restaurant_id", restaurantID),
		slog.Int("orders", report.Overall.Orders))
	return &report, nil
}

// RatingsReport generates the ratings rollup
func (s *reportingService) RatingsReport(ctx context.Context, restaurantID string, window domain.ReportWindow) (*domain.RestaurantRating, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	reviews, err := readWithRetry(ctx, &s.BaseService, "reviews_in_window", func(ctx context.Context) ([]domain.Review, error) {
		return s.reportingRepo.ListReviewsInWindow(ctx, restaurantID, window)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve reviews for ratings report",
			slog.String("restaurant_id", restaurantID),
			slog.String("from", window.From.Format(time.RFC3339)),
			slog.String("to", window.To.Format(time.RFC3339)))
		return nil, err
	}
	report := reporting.BuildRatingsReport(restaurantID, window, reviews, s.location)

	s.LogInfo(ctx, "Ratings report generated",
		slog.String("restaurant_id", restaurantID),
		slog.Int("reviews", report.Overall.Reviews),
		slog.Float64("overall", report.Overall.Overall))
	return &report, nil
}

func (s *reportingService) reservations(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Reservation, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	rows, err := readWithRetry(ctx, &s.BaseService, "reservations_in_window", func(ctx context.Context) ([]domain.Reservation, error) {
		return s.reportingRepo.ListReservationsInWindow(ctx, restaurantID, window)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve reservations for report",
			slog.String("restaurant_id", restaurantID),
			slog.String("from", window.From.Format(time.RFC3339)),
			slog.String("to", window.To.Format(time.RFC3339)))
		return nil, err
	}
	return rows, nil
}
