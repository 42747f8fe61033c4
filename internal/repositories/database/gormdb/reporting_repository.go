package gormdb

import (
	"context"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	"github.com/Shunea/be-easyreserv-sub002/internal/models"
	"github.com/Shunea/be-easyreserv-sub002/internal/utils/mapping"
)

type ReportingRepository struct {
	BaseRepository
}

var _ portsrepo.ReportingReader = (*ReportingRepository)(nil)

func (r *ReportingRepository) ListReservationsInWindow(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Reservation, error) {
	var ms []models.Reservation
	err := r.db(ctx).
		Where("restaurant_id = ? AND reserved_for >= ? AND reserved_for < ?", restaurantID, window.From.UTC(), window.To.UTC()).
		Order("reserved_for").
		Find(&ms).Error
	if err != nil {
		return nil, mapError(err, "error querying reservations for report")
	}
	return mapping.ToDomainReservationSlice(ms), nil
}

func (r *ReportingRepository) ListOrdersInWindow(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Order, error) {
	var ms []models.Order
	err := r.db(ctx).
		Where("restaurant_id = ? AND closed_at >= ? AND closed_at < ?", restaurantID, window.From.UTC(), window.To.UTC()).
		Order("closed_at").
		Find(&ms).Error
	if err != nil {
		return nil, mapError(err, "error querying orders for report")
	}
	return mapping.ToDomainOrderSlice(ms), nil
}

func (r *ReportingRepository) ListReviewsInWindow(ctx context.Context, restaurantID string, window domain.ReportWindow) ([]domain.Review, error) {
	var ms []models.Review
	err := r.db(ctx).
		Where("restaurant_id = ? AND created_at >= ? AND created_at < ?", restaurantID, window.From.UTC(), window.To.UTC()).
		Order("created_at").
		Find(&ms).Error
	if err != nil {
		return nil, mapError(err, "error querying reviews for report")
	}
	return mapping.ToDomainReviewSlice(ms), nil
}
