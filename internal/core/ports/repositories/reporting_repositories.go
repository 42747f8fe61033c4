package repositories

import (
	"context"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
)

// ReportingReader retrieves raw report inputs for a restaurant within a window.
// Implementations may read from a replica; callers tolerate slightly stale data.
type ReportingReader interface {
	// ListReservationsInWindow returns reservations whose reservedFor falls inside the window.
	ListReservationsInWindow(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Reservation, error)

	// ListOrdersInWindow returns orders closed inside the window, in any status.
	ListOrdersInWindow(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Order, error)

	// ListReviewsInWindow returns reviews created inside the window.
	ListReviewsInWindow(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Review, error)
}
