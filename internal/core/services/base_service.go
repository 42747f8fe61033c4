package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/ports"
	"github.com/Shunea/be-easyreserv-sub002/internal/platform/logging"
)

// DefaultStoreTimeout bounds store work when no explicit timeout is configured.
const DefaultStoreTimeout = 5 * time.Second

// BaseService provides common functionality for all services
type BaseService struct {
	Clock        ports.Clock
	StoreTimeout time.Duration
}

// ServiceOption configures the shared parts of a service.
type ServiceOption func(*BaseService)

// WithClock sets the clock used for timestamps and cutoff checks.
func WithClock(clock ports.Clock) ServiceOption {
	return func(s *BaseService) {
		if clock != nil {
			s.Clock = clock
		}
	}
}

// WithStoreTimeout sets the upper bound of one unit of store work.
func WithStoreTimeout(d time.Duration) ServiceOption {
	return func(s *BaseService) {
		if d > 0 {
			s.StoreTimeout = d
		}
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{Clock: ports.SystemClock{}, StoreTimeout: DefaultStoreTimeout}
	for _, option := range options {
		option(&base)
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs an expected failure, such as a lost optimistic-lock race
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// now returns the current time according to the injected clock.
func (s *BaseService) now() time.Time {
	return s.Clock.Now()
}

// withStoreTimeout derives a context bounded by the store timeout.
func (s *BaseService) withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.StoreTimeout)
}

// storeError turns a deadline hit while talking to the store into a StorageUnavailable error.
// Adapters already classify driver errors; this catches timeouts raised before the driver saw the call.
func storeError(err error) error {
	if err == nil || errors.Is(err, apperrors.ErrStorageUnavailable) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStorageUnavailableError("store call timed out", err)
	}
	return err
}

// isExpected reports whether err is a business outcome rather than an infrastructure failure.
func isExpected(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrInvalidState) ||
		errors.Is(err, apperrors.ErrIllegalTransition) ||
		errors.Is(err, apperrors.ErrConflict)
}

// logFailure logs expected failures at warn and everything else at error.
func (s *BaseService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if isExpected(err) {
		s.LogWarn(ctx, err, msg, keyvals...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// readWithRetry runs a pure read, retrying it once when the store reports itself unavailable.
// Each attempt gets its own store timeout. Mutations must never go through here.
func readWithRetry[T any](ctx context.Context, s *BaseService, op string, read func(ctx context.Context) (T, error)) (T, error) {
	attempt := func() (T, error) {
		callCtx, cancel := s.withStoreTimeout(ctx)
		defer cancel()
		v, err := read(callCtx)
		return v, storeError(err)
	}

	v, err := attempt()
	if err == nil || !errors.Is(err, apperrors.ErrStorageUnavailable) || ctx.Err() != nil {
		return v, err
	}
	s.LogWarn(ctx, err, "Store unavailable, retrying read", slog.String("operation", op))
	return attempt()
}
