package pgsql

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protecfeu/erp_backend/internal/core/domain"
)

func newReportingRepoWithMock(t *testing.T) (*PgxReportingRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := &PgxReportingRepository{BaseRepository: BaseRepository{DB: mock}}
	return repo, mock
}

func TestReportingRepositoryTrialBalance(t *testing.T) {
	ctx := context.Background()
	repo, mock := newReportingRepoWithMock(t)
	defer mock.Close()

	columns := []string{"account_id", "label", "account_type", "balance_minor"}
	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY a.account_id, a.label, a.account_type`)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "Banque principale", domain.Asset, int64(120000)).
			AddRow(int64(30), "Ventes", domain.Income, int64(-120000)).
			AddRow(int64(40), "Carburant", domain.Expense, int64(0)))

	report, err := repo.TrialBalance(ctx)

	assert.NoError(t, err)
	require.Len(t, report, 3)
	assert.Equal(t, domain.Asset, report[0].AccountType)
	assert.Equal(t, int64(120000), report[0].BalanceMinor)
	assert.Equal(t, int64(-120000), report[1].BalanceMinor)
	assert.Equal(t, int64(0), report[2].BalanceMinor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportingRepositoryTrialBalanceRepeatable(t *testing.T) {
	ctx := context.Background()
	repo, mock := newReportingRepoWithMock(t)
	defer mock.Close()

	columns := []string{"account_id", "label", "account_type", "balance_minor"}
	query := regexp.QuoteMeta(`GROUP BY a.account_id, a.label, a.account_type`)
	// With no postings in between, two runs see the same rows.
	mock.ExpectQuery(query).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "Banque principale", domain.Asset, int64(120000)).
			AddRow(int64(30), "Ventes", domain.Income, int64(-120000)))
	mock.ExpectQuery(query).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "Banque principale", domain.Asset, int64(120000)).
			AddRow(int64(30), "Ventes", domain.Income, int64(-120000)))

	first, err := repo.TrialBalance(ctx)
	require.NoError(t, err)
	second, err := repo.TrialBalance(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportingRepositoryProfitAndLossTotals(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`WHERE a.account_type IN ('INCOME', 'EXPENSE')`)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newReportingRepoWithMock(t)
		defer mock.Close()

		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows([]string{"income_minor", "expenses_minor"}).
				AddRow(int64(250000), int64(180000)))

		incomeMinor, expensesMinor, err := repo.ProfitAndLossTotals(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(250000), incomeMinor)
		assert.Equal(t, int64(180000), expensesMinor)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("QueryError", func(t *testing.T) {
		repo, mock := newReportingRepoWithMock(t)
		defer mock.Close()

		queryErr := errors.New("connection refused")
		mock.ExpectQuery(query).WillReturnError(queryErr)

		_, _, err := repo.ProfitAndLossTotals(ctx)

		assert.ErrorIs(t, err, queryErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
