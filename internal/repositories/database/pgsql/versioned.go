package pgsql

import (
	"context"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// checkVersioned turns a versioned UPDATE that touched no row into NotFound or Conflict.
// existsSQL must select 1 for the row's primary key.
func checkVersioned(ctx context.Context, q querier, tag pgconn.CommandTag, existsSQL, id, entity string) error {
	if tag.RowsAffected() > 0 {
		return nil
	}
	var one int
	if err := q.QueryRow(ctx, existsSQL, id).Scan(&one); err != nil {
		return mapError(err, entity+" not found")
	}
	return apperrors.NewConflictError(entity + " was modified concurrently")
}
