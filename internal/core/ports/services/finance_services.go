package services

import (
	"context"

	"github.com/protecfeu/erp_backend/internal/core/domain"
	"github.com/protecfeu/erp_backend/internal/dto"
)

// AccountService manages general ledger accounts.
type AccountService interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
}

// LedgerService posts and reads double-entry ledger lines.
type LedgerService interface {
	PostLine(ctx context.Context, req dto.CreateLedgerLineRequest, userID string) (*domain.LedgerLine, error)
	GetLineByID(ctx context.Context, lineID int64) (*domain.LedgerLine, error)
	ListLines(ctx context.Context, accountID *int64, limit, offset int) ([]domain.LedgerLine, error)
}

// ReportingService computes the financial reports. Every call re-derives its
// result from the full ledger line set.
type ReportingService interface {
	TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error)
	ProfitAndLoss(ctx context.Context) (*domain.ProfitAndLoss, error)
}

// CashBoxService manages project cash boxes and their scoped ledger view.
type CashBoxService interface {
	CreateCashBox(ctx context.Context, projectID int64, req dto.CreateCashBoxRequest, userID string) (*domain.ProjectCashBox, error)
	Balance(ctx context.Context, projectID int64) (*domain.CashBoxBalance, error)
	TopUp(ctx context.Context, projectID int64, req dto.CashTopUpRequest, userID string) (*domain.LedgerLine, error)
	Expense(ctx context.Context, projectID int64, req dto.CashExpenseRequest, userID string) (*domain.LedgerLine, error)
	Statement(ctx context.Context, projectID int64, limit, offset int) ([]domain.CashStatementEntry, error)
}
