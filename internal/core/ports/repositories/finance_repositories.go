package repositories

import (
	"context"
	"time"

	"github.com/protecfeu/erp_backend/internal/core/domain"
)

// AccountRepository persists general ledger accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
}

// LedgerLineFilter narrows ListLines. A nil AccountID returns all lines.
type LedgerLineFilter struct {
	AccountID *int64
	Limit     int
	Offset    int
}

// LedgerRepository persists the append-only journal of ledger lines.
// There are deliberately no update or delete operations.
type LedgerRepository interface {
	SaveLine(ctx context.Context, line domain.LedgerLine) (*domain.LedgerLine, error)
	FindLineByID(ctx context.Context, lineID int64) (*domain.LedgerLine, error)
	// ListLines returns lines ordered by operation date descending.
	ListLines(ctx context.Context, filter LedgerLineFilter) ([]domain.LedgerLine, error)
	// ListLinesForAccount returns lines touching accountID on either side,
	// newest first, with each line's category label resolved.
	ListLinesForAccount(ctx context.Context, accountID int64, limit, offset int) ([]domain.LedgerLine, map[int64]string, error)
	// AccountActivity derives sum(debit)-sum(credit) for one account plus the
	// most recent operation date, aggregating over the full line set.
	AccountActivity(ctx context.Context, accountID int64) (int64, *time.Time, error)
	// BalanceBefore derives the account balance from all lines strictly older
	// than (before, beforeLineID), used as the opening balance of a
	// statement page.
	BalanceBefore(ctx context.Context, accountID int64, before time.Time, beforeLineID int64) (int64, error)
}

// CashBoxRepository persists project cash boxes.
type CashBoxRepository interface {
	// SaveCashBox creates the backing account and the box binding atomically.
	SaveCashBox(ctx context.Context, box domain.ProjectCashBox, backing domain.Account) (*domain.ProjectCashBox, error)
	FindCashBoxByProjectID(ctx context.Context, projectID int64) (*domain.ProjectCashBox, error)
}

// ReportingRepository runs the pure aggregation queries over the ledger.
type ReportingRepository interface {
	// TrialBalance returns every account's debit-minus-credit balance,
	// ordered by account type then label.
	TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error)
	// ProfitAndLossTotals returns (income, expenses) in minor units:
	// income credit-minus-debit over INCOME accounts, expenses
	// debit-minus-credit over EXPENSE accounts.
	ProfitAndLossTotals(ctx context.Context) (int64, int64, error)
}
