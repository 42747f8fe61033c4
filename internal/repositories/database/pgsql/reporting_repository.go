package pgsql

import (
	"context"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	"github.com/Shunea/be-easyreserv-sub002/internal/models"
	"github.com/Shunea/be-easyreserv-sub002/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingReader interface. It may sit on a read replica.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingReader {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingReader = (*reportingRepository)(nil)

// ListReservationsInWindow returns the reservations of a restaurant due inside the window.
func (r *reportingRepository) ListReservationsInWindow(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE restaurant_id = $1 AND reserved_for >= $2 AND reserved_for < $3
		ORDER BY reserved_for
	`
	rows, err := r.Pool.Query(ctx, query, restaurantID, window.From.UTC(), window.To.UTC())
	if err != nil {
		return nil, mapError(err, "error querying reservations for report")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Reservation])
	if err != nil {
		return nil, mapError(err, "error scanning reservations for report")
	}
	return mapping.ToDomainReservationSlice(ms), nil
}

// ListOrdersInWindow returns the orders of a restaurant closed inside the window.
func (r *reportingRepository) ListOrdersInWindow(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Order, error) {
	query := `
		SELECT order_id, restaurant_id, space_id, reservation_id, status, total, closed_at
		FROM orders
		WHERE restaurant_id = $1 AND closed_at >= $2 AND closed_at < $3
		ORDER BY closed_at
	`
	rows, err := r.Pool.Query(ctx, query, restaurantID, window.From.UTC(), window.To.UTC())
	if err != nil {
		return nil, mapError(err, "error querying orders for report")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Order])
	if err != nil {
		return nil, mapError(err, "error scanning orders for report")
	}
	return mapping.ToDomainOrderSlice(ms), nil
}

// ListReviewsInWindow returns the reviews of a restaurant written inside the window.
func (r *reportingRepository) ListReviewsInWindow(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Review, error) {
	query := `
		SELECT review_id, restaurant_id, reservation_id, food, service, price, ambience, created_at
		FROM reviews
		WHERE restaurant_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at
	`
	rows, err := r.Pool.Query(ctx, query, restaurantID, window.From.UTC(), window.To.UTC())
	if err != nil {
		return nil, mapError(err, "error querying reviews for report")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Review])
	if err != nil {
		return nil, mapError(err, "error scanning reviews for report")
	}
	return mapping.ToDomainReviewSlice(ms), nil
}
