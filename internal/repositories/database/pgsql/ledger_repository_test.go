package pgsql

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
)

func newLedgerRepoWithMock(t *testing.T) (*PgxLedgerRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := &PgxLedgerRepository{BaseRepository: BaseRepository{DB: mock}}
	return repo, mock
}

func TestLedgerRepositorySaveLine(t *testing.T) {
	ctx := context.Background()
	operationDate := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	line := domain.LedgerLine{
		DebitAccountID:  10,
		CreditAccountID: 20,
		AmountMinor:     15000,
		CurrencyCode:    "MAD",
		OperationDate:   operationDate,
		Memo:            "Achat extincteurs",
		CreatedBy:       "user-1",
	}
	query := regexp.QuoteMeta(`INSERT INTO ledger_lines (debit_account_id, credit_account_id, amount_minor, currency_code, fx_rate, operation_date, category_id, memo, created_by)`)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newLedgerRepoWithMock(t)
		defer mock.Close()

		mock.ExpectQuery(query).
			WithArgs(
				int64(10), int64(20), int64(15000), "MAD",
				decimal.NullDecimal{}, operationDate, sql.NullInt64{},
				sql.NullString{String: "Achat extincteurs", Valid: true}, "user-1",
			).
			WillReturnRows(pgxmock.NewRows([]string{"line_id"}).AddRow(int64(1)))

		saved, err := repo.SaveLine(ctx, line)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), saved.LineID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ForeignKeyViolation", func(t *testing.T) {
		repo, mock := newLedgerRepoWithMock(t)
		defer mock.Close()

		mock.ExpectQuery(query).
			WithArgs(
				int64(10), int64(20), int64(15000), "MAD",
				decimal.NullDecimal{}, operationDate, sql.NullInt64{},
				sql.NullString{String: "Achat extincteurs", Valid: true}, "user-1",
			).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		saved, err := repo.SaveLine(ctx, line)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Nil(t, saved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepositoryFindLineByID(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`FROM ledger_lines WHERE line_id = $1`)
	columns := []string{"line_id", "debit_account_id", "credit_account_id", "amount_minor", "currency_code", "fx_rate", "operation_date", "category_id", "memo", "created_by"}

	t.Run("Success", func(t *testing.T) {
		repo, mock := newLedgerRepoWithMock(t)
		defer mock.Close()
		operationDate := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery(query).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(1), int64(10), int64(20), int64(15000), "MAD", decimal.NullDecimal{}, operationDate, sql.NullInt64{}, sql.NullString{}, "user-1"))

		line, err := repo.FindLineByID(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, int64(10), line.DebitAccountID)
		assert.Equal(t, int64(15000), line.AmountMinor)
		assert.Nil(t, line.CategoryID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock := newLedgerRepoWithMock(t)
		defer mock.Close()

		mock.ExpectQuery(query).
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		line, err := repo.FindLineByID(ctx, 99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Nil(t, line)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepositoryAccountActivity(t *testing.T) {
	ctx := context.Background()
	repo, mock := newLedgerRepoWithMock(t)
	defer mock.Close()
	last := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`MAX(operation_date) AS last_operation`)).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"balance_minor", "last_operation"}).AddRow(int64(12500), &last))

	balanceMinor, lastOperation, err := repo.AccountActivity(ctx, 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(12500), balanceMinor)
	require.NotNil(t, lastOperation)
	assert.Equal(t, last, *lastOperation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepositoryBalanceBefore(t *testing.T) {
	ctx := context.Background()
	repo, mock := newLedgerRepoWithMock(t)
	defer mock.Close()
	before := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`AND (operation_date < $2 OR (operation_date = $2 AND line_id < $3))`)).
		WithArgs(int64(5), before, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"balance_minor"}).AddRow(int64(0)))

	balanceMinor, err := repo.BalanceBefore(ctx, 5, before, 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), balanceMinor)
	assert.NoError(t, mock.ExpectationsWereMet())
}
