package pgsql

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
)

func newStockRepoWithMock(t *testing.T) (*PgxStockRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := &PgxStockRepository{BaseRepository: BaseRepository{DB: mock}}
	return repo, mock
}

func TestStockRepositorySaveMove(t *testing.T) {
	ctx := context.Background()
	dest := int64(2)
	moveDate := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	move := domain.StockMove{
		ArticleID:      4,
		DestLocationID: &dest,
		Quantity:       decimal.RequireFromString("10"),
		MoveDate:       moveDate,
		Reference:      "BL-2026-001",
		CreatedBy:      "user-1",
	}
	query := regexp.QuoteMeta(`INSERT INTO stock_moves (article_id, source_location_id, dest_location_id, quantity, unit_cost, currency_code, move_date, reference, created_by)`)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newStockRepoWithMock(t)
		defer mock.Close()

		mock.ExpectQuery(query).
			WithArgs(
				int64(4), sql.NullInt64{}, sql.NullInt64{Int64: 2, Valid: true},
				decimal.RequireFromString("10"), decimal.NullDecimal{}, sql.NullString{},
				moveDate, sql.NullString{String: "BL-2026-001", Valid: true}, "user-1",
			).
			WillReturnRows(pgxmock.NewRows([]string{"move_id"}).AddRow(int64(7)))

		saved, err := repo.SaveMove(ctx, move)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), saved.MoveID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ForeignKeyViolation", func(t *testing.T) {
		repo, mock := newStockRepoWithMock(t)
		defer mock.Close()

		mock.ExpectQuery(query).
			WithArgs(
				int64(4), sql.NullInt64{}, sql.NullInt64{Int64: 2, Valid: true},
				decimal.RequireFromString("10"), decimal.NullDecimal{}, sql.NullString{},
				moveDate, sql.NullString{String: "BL-2026-001", Valid: true}, "user-1",
			).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		saved, err := repo.SaveMove(ctx, move)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Nil(t, saved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStockRepositoryLocationInventory(t *testing.T) {
	ctx := context.Background()
	repo, mock := newStockRepoWithMock(t)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY article_id`)).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"article_id", "qty_available"}).
			AddRow(int64(4), decimal.RequireFromString("6")).
			AddRow(int64(9), decimal.RequireFromString("2.5")))

	inventory, err := repo.LocationInventory(ctx, 2)

	assert.NoError(t, err)
	require.Len(t, inventory, 2)
	assert.Equal(t, int64(2), inventory[0].LocationID)
	assert.Equal(t, int64(4), inventory[0].ArticleID)
	assert.True(t, inventory[0].QtyAvailable.Equal(decimal.RequireFromString("6")))
	assert.True(t, inventory[1].QtyAvailable.Equal(decimal.RequireFromString("2.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepositoryListMovesForArticleAt(t *testing.T) {
	ctx := context.Background()
	repo, mock := newStockRepoWithMock(t)
	defer mock.Close()
	day := func(d int) time.Time { return time.Date(2026, 8, d, 9, 0, 0, 0, time.UTC) }
	columns := []string{"move_id", "article_id", "source_location_id", "dest_location_id", "quantity", "unit_cost", "currency_code", "move_date", "reference", "created_by"}

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY move_date ASC, move_id ASC`)).
		WithArgs(int64(2), int64(4)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), int64(4), sql.NullInt64{}, sql.NullInt64{Int64: 2, Valid: true}, decimal.RequireFromString("10"), decimal.NullDecimal{}, sql.NullString{}, day(1), sql.NullString{}, "user-1").
			AddRow(int64(2), int64(4), sql.NullInt64{Int64: 2, Valid: true}, sql.NullInt64{Int64: 3, Valid: true}, decimal.RequireFromString("4"), decimal.NullDecimal{}, sql.NullString{}, day(5), sql.NullString{}, "user-1"))

	moves, err := repo.ListMovesForArticleAt(ctx, 2, 4)

	assert.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Nil(t, moves[0].SourceLocationID)
	require.NotNil(t, moves[0].DestLocationID)
	assert.Equal(t, int64(2), *moves[0].DestLocationID)
	assert.True(t, moves[1].Quantity.Equal(decimal.RequireFromString("4")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
