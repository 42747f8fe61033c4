package mapping

import (
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/Shunea/be-easyreserv-sub002/internal/models"
)

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) models.Order {
	var closedAt *time.Time
	if !d.ClosedAt.IsZero() {
		t := d.ClosedAt.UTC()
		closedAt = &t
	}
	return models.Order{
		OrderID:       d.OrderID,
		RestaurantID:  d.RestaurantID,
		SpaceID:       d.SpaceID,
		ReservationID: nullable(d.ReservationID),
		Status:        string(d.Status),
		Total:         d.Total,
		ClosedAt:      closedAt,
	}
}

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	d := domain.Order{
		OrderID:       m.OrderID,
		RestaurantID:  m.RestaurantID,
		SpaceID:       m.SpaceID,
		ReservationID: deref(m.ReservationID),
		Status:        domain.OrderStatus(m.Status),
		Total:         m.Total,
	}
	if m.ClosedAt != nil {
		d.ClosedAt = m.ClosedAt.UTC()
	}
	return d
}

// ToDomainOrderSlice converts order rows to domain orders.
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}

// ToModelReview converts a domain Review to a model Review
func ToModelReview(d domain.Review) models.Review {
	return models.Review{
		ReviewID:      d.ReviewID,
		RestaurantID:  d.RestaurantID,
		ReservationID: nullable(d.ReservationID),
		Food:          d.Food,
		Service:       d.Service,
		Price:         d.Price,
		Ambience:      d.Ambience,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}

// ToDomainReview converts a model Review to a domain Review
func ToDomainReview(m models.Review) domain.Review {
	return domain.Review{
		ReviewID:      m.ReviewID,
		RestaurantID:  m.RestaurantID,
		ReservationID: deref(m.ReservationID),
		Food:          m.Food,
		Service:       m.Service,
		Price:         m.Price,
		Ambience:      m.Ambience,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

// ToDomainReviewSlice converts review rows to domain reviews.
func ToDomainReviewSlice(ms []models.Review) []domain.Review {
	ds := make([]domain.Review, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReview(m)
	}
	return ds
}
