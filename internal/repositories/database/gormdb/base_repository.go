package gormdb

import (
	"context"
	"errors"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	"github.com/Shunea/be-easyreserv-sub002/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type txKey struct{}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *gorm.DB
}

// db returns the transaction carried by ctx, or the base handle bound to ctx.
func (r *BaseRepository) db(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.DB.WithContext(ctx)
}

// TransactionManager runs units of work in a gorm transaction stored in the context.
type TransactionManager struct {
	BaseRepository
}

var _ portsrepo.TransactionManager = (*TransactionManager)(nil)

// WithinTransaction commits when fn succeeds and rolls back otherwise. Nested calls join the outer transaction.
func (m *TransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	var appErr *apperrors.AppError
	if err != nil && !errors.As(err, &appErr) {
		return mapError(err, "transaction failed")
	}
	return err
}

// AutoMigrate creates or updates the tables for every row model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.StaffMember{},
		&models.Schedule{},
		&models.Reservation{},
		&models.ReservationHistory{},
		&models.Order{},
		&models.Review{},
	)
}

// NewRepositoryProvider wires the gorm repositories.
func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db}
	return portsrepo.RepositoryProvider{
		Tx:              &TransactionManager{BaseRepository: base},
		StaffRepo:       &StaffRepository{BaseRepository: base},
		ScheduleRepo:    &ScheduleRepository{BaseRepository: base},
		ReservationRepo: &ReservationRepository{BaseRepository: base},
		HistoryRepo:     &HistoryRepository{BaseRepository: base},
		ReportingRepo:   &ReportingRepository{BaseRepository: base},
	}
}

func mapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NewNotFoundError(msg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewAppError(409, msg, errors.Join(apperrors.ErrDuplicate, err))
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return apperrors.NewAppError(400, msg, errors.Join(apperrors.ErrValidation, err))
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewStorageUnavailableError(msg, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
		return apperrors.NewAppError(400, "overlapping shift", errors.Join(apperrors.ErrValidation, err))
	}
	return apperrors.NewAppError(500, msg, err)
}

// checkVersioned turns a versioned update that touched no row into NotFound or Conflict.
func checkVersioned(db *gorm.DB, res *gorm.DB, model any, where string, id, entity string) error {
	if res.Error != nil {
		return mapError(res.Error, "failed to update "+entity)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var n int64
	if err := db.Model(model).Where(where, id).Count(&n).Error; err != nil {
		return mapError(err, "failed to check "+entity)
	}
	if n == 0 {
		return apperrors.NewNotFoundError(entity + " not found")
	}
	return apperrors.NewConflictError(entity + " was modified concurrently")
}
