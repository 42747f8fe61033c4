package repositories

import (
	"context"
)

// TransactionManager runs a unit of work atomically.
//
// The transaction travels inside the context passed to fn; repository calls made with that
// context join it. A non-nil error from fn rolls everything back.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
