package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/middleware"
)

// Querier supports database operations for both a pool and a transaction,
// which also lets pgxmock drive repository tests.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner is a Querier that can open transactions.
type TxBeginner interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

var (
	_ Querier    = (*pgxpool.Pool)(nil)
	_ Querier    = (pgx.Tx)(nil)
	_ TxBeginner = (*pgxpool.Pool)(nil)
)

// BaseRepository provides the shared Querier handle and transaction helpers.
type BaseRepository struct {
	DB Querier
}

// Begin starts a database transaction. The underlying Querier must be a
// TxBeginner (the pool, not an already-open transaction).
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	beginner, ok := r.DB.(TxBeginner)
	if !ok {
		return nil, apperrors.NewAppError(500, "querier cannot begin transactions", nil)
	}
	tx, err := beginner.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Rollback rolls back tx, ignoring the already-committed case.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) && !errors.Is(err, sql.ErrTxDone) {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to roll back transaction", slog.String("error", err.Error()))
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports whether err is a PostgreSQL FK violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
