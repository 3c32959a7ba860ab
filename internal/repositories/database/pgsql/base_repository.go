package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// queryRow scans a single row into dest. found is false when no row matched.
func (r *BaseRepository) queryRow(ctx context.Context, failMsg, query string, args []any, dest ...any) (found bool, err error) {
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperrors.NewAppError(http.StatusInternalServerError, failMsg, err)
	}
	return true, nil
}

// exec runs a single write statement.
func (r *BaseRepository) exec(ctx context.Context, failMsg, query string, args ...any) error {
	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, failMsg, err)
	}
	return nil
}
