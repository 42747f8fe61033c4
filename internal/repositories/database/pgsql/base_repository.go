package pgsql

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	"github.com/Shunea/be-easyreserv-sub002/internal/platform/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation        = "23505"
	pgExclusionViolation     = "23P01"
	pgCheckViolation         = "23514"
	pgSerializationFailure   = "40001"
	pgQueryCanceled          = "57014"
	pgAdminShutdown          = "57P01"
	pgCannotConnectNow       = "57P03"
	pgTooManyConnections     = "53300"
	pgConnectionExceptionCls = "08"
)

type txKey struct{}

// querier is the part of pgx shared by the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// db returns the transaction carried by ctx, or the pool.
func (r *BaseRepository) db(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.Pool
}

// TransactionManager runs units of work in a pgx transaction stored in the context.
type TransactionManager struct {
	BaseRepository
}

func newTransactionManager(pool *pgxpool.Pool) *TransactionManager {
	return &TransactionManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*TransactionManager)(nil)

// WithinTransaction commits when fn succeeds and rolls back otherwise. Nested calls join the outer transaction.
func (m *TransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.Pool.Begin(ctx)
	if err != nil {
		return mapError(err, "failed to begin transaction")
	}
	defer func() {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logging.FromContext(ctx).Warn("Rollback failed", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return mapError(err, "failed to commit transaction")
	}
	return nil
}

// mapError classifies driver errors into the application error taxonomy.
func mapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(msg)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgExclusionViolation:
			return apperrors.NewAppError(400, "overlapping shift", errors.Join(apperrors.ErrValidation, err))
		case pgErr.Code == pgCheckViolation:
			return apperrors.NewAppError(400, msg, errors.Join(apperrors.ErrValidation, err))
		case pgErr.Code == pgUniqueViolation:
			return apperrors.NewAppError(409, msg, errors.Join(apperrors.ErrDuplicate, err))
		case pgErr.Code == pgSerializationFailure:
			return apperrors.NewAppError(409, msg, errors.Join(apperrors.ErrConflict, err))
		case pgErr.Code == pgQueryCanceled, pgErr.Code == pgAdminShutdown, pgErr.Code == pgCannotConnectNow,
			pgErr.Code == pgTooManyConnections, len(pgErr.Code) == 5 && pgErr.Code[:2] == pgConnectionExceptionCls:
			return apperrors.NewStorageUnavailableError(msg, err)
		}
		return apperrors.NewAppError(500, msg, err)
	}

	if isUnavailable(err) {
		return apperrors.NewStorageUnavailableError(msg, err)
	}
	return apperrors.NewAppError(500, msg, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
