package gormdb

import (
	"context"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	"github.com/Shunea/be-easyreserv-sub002/internal/models"
	"github.com/Shunea/be-easyreserv-sub002/internal/utils/mapping"
	"github.com/Shunea/be-easyreserv-sub002/internal/utils/pagination"
	"gorm.io/gorm"
)

type ReservationRepository struct {
	BaseRepository
}

var _ portsrepo.ReservationRepositoryFacade = (*ReservationRepository)(nil)

func (r *ReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	m := mapping.ToModelReservation(reservation)
	return mapError(r.db(ctx).Create(&m).Error, "failed to save reservation "+m.ReservationID)
}

func (r *ReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	var m models.Reservation
	if err := r.db(ctx).Where("reservation_id = ?", reservationID).First(&m).Error; err != nil {
		return nil, mapError(err, "reservation not found")
	}
	res := mapping.ToDomainReservation(m)
	return &res, nil
}

func (r *ReservationRepository) ListReservations(ctx context.Context, filter domain.ReservationFilter, limit int, nextToken *string) ([]domain.Reservation, *string, error) {
	q := r.db(ctx).Where("restaurant_id = ?", filter.RestaurantID)
	if filter.SpaceID != "" {
		q = q.Where("space_id = ?", filter.SpaceID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if filter.From != nil {
		q = q.Where("reserved_for >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where("reserved_for < ?", filter.To.UTC())
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		q = q.Where("reserved_for > ? OR (reserved_for = ? AND reservation_id > ?)", cursor.At, cursor.At, cursor.ID)
	}

	var ms []models.Reservation
	if err := q.Order("reserved_for, reservation_id").Limit(limit).Find(&ms).Error; err != nil {
		return nil, nil, mapError(err, "failed to list reservations")
	}
	list := mapping.ToDomainReservationSlice(ms)
	next := pagination.NextToken(list, limit, func(res domain.Reservation) (time.Time, string) {
		return res.ReservedFor, res.ReservationID
	})
	return list, next, nil
}

func (r *ReservationRepository) ListNoShowCandidates(ctx context.Context, before time.Time, after *domain.ReservationKey, limit int) ([]domain.Reservation, error) {
	q := r.db(ctx).
		Where("status IN ? AND reserved_for < ?", []string{string(domain.StatusConfirmed), string(domain.StatusConfirmedPreorder)}, before.UTC())
	if after != nil {
		at := after.ReservedFor.UTC()
		q = q.Where("reserved_for > ? OR (reserved_for = ? AND reservation_id > ?)", at, at, after.ReservationID)
	}

	var ms []models.Reservation
	err := q.
		Order("reserved_for, reservation_id").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, mapError(err, "failed to list no-show candidates")
	}
	return mapping.ToDomainReservationSlice(ms), nil
}

func (r *ReservationRepository) UpdateReservationStatus(ctx context.Context, reservation domain.Reservation, expectedVersion int64) error {
	m := mapping.ToModelReservation(reservation)
	db := r.db(ctx)
	res := db.Model(&models.Reservation{}).
		Where("reservation_id = ? AND version = ?", m.ReservationID, expectedVersion).
		Updates(map[string]any{
			"status":          m.Status,
			"last_updated_at": m.LastUpdatedAt,
			"last_updated_by": m.LastUpdatedBy,
			"version":         gorm.Expr("version + 1"),
		})
	return checkVersioned(db, res, &models.Reservation{}, "reservation_id = ?", m.ReservationID, "reservation")
}

type HistoryRepository struct {
	BaseRepository
}

var _ portsrepo.ReservationHistoryRepositoryFacade = (*HistoryRepository)(nil)

func (r *HistoryRepository) Append(ctx context.Context, record domain.ReservationHistoryRecord) error {
	m := mapping.ToModelReservationHistory(record)
	return mapError(r.db(ctx).Create(&m).Error, "failed to append reservation history")
}

func (r *HistoryRepository) ListHistory(ctx context.Context, reservationID string) ([]domain.ReservationHistoryRecord, error) {
	var ms []models.ReservationHistory
	err := r.db(ctx).Where("reservation_id = ?", reservationID).Order("occurred_at, record_id").Find(&ms).Error
	if err != nil {
		return nil, mapError(err, "failed to list reservation history")
	}
	return mapping.ToDomainReservationHistorySlice(ms), nil
}
