package pgsql

import (
	"context"
	"fmt"

	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db Querier) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// TrialBalance derives every account's debit-minus-credit balance in one
// aggregation over the journal. Accounts without lines report zero.
func (r *PgxReportingRepository) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.label,
			a.account_type,
			COALESCE(SUM(
				CASE
					WHEN ll.debit_account_id = a.account_id THEN ll.amount_minor
					WHEN ll.credit_account_id = a.account_id THEN -ll.amount_minor
					ELSE 0
				END
			), 0) AS balance_minor
		FROM accounts a
		LEFT JOIN ledger_lines ll
			ON ll.debit_account_id = a.account_id OR ll.credit_account_id = a.account_id
		GROUP BY a.account_id, a.label, a.account_type
		ORDER BY a.account_type, a.label;
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to compute trial balance: %w", err)
	}
	defer rows.Close()

	report := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(&row.AccountID, &row.Label, &row.AccountType, &row.BalanceMinor); err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row: %w", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}
	return report, nil
}

// ProfitAndLossTotals aggregates income as credit-minus-debit over INCOME
// accounts and expenses as debit-minus-credit over EXPENSE accounts.
func (r *PgxReportingRepository) ProfitAndLossTotals(ctx context.Context) (int64, int64, error) {
	query := `
		SELECT
			COALESCE(SUM(
				CASE
					WHEN a.account_type = 'INCOME' AND ll.credit_account_id = a.account_id THEN ll.amount_minor
					WHEN a.account_type = 'INCOME' AND ll.debit_account_id = a.account_id THEN -ll.amount_minor
					ELSE 0
				END
			), 0) AS income_minor,
			COALESCE(SUM(
				CASE
					WHEN a.account_type = 'EXPENSE' AND ll.debit_account_id = a.account_id THEN ll.amount_minor
					WHEN a.account_type = 'EXPENSE' AND ll.credit_account_id = a.account_id THEN -ll.amount_minor
					ELSE 0
				END
			), 0) AS expenses_minor
		FROM accounts a
		JOIN ledger_lines ll
			ON ll.debit_account_id = a.account_id OR ll.credit_account_id = a.account_id
		WHERE a.account_type IN ('INCOME', 'EXPENSE');
	`
	var incomeMinor, expensesMinor int64
	if err := r.DB.QueryRow(ctx, query).Scan(&incomeMinor, &expensesMinor); err != nil {
		return 0, 0, fmt.Errorf("failed to compute profit and loss totals: %w", err)
	}
	return incomeMinor, expensesMinor, nil
}
