package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
	"github.com/protecfeu/erp_backend/internal/core/flow"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
)

type cashBoxService struct {
	BaseService
	cashBoxRepo      portsrepo.CashBoxRepository
	ledgerRepo       portsrepo.LedgerRepository
	projectRepo      portsrepo.ProjectRepository
	accountRepo      portsrepo.AccountRepository
	referenceRepo    portsrepo.ReferenceRepository
	fundingAccountID int64
	defaultCurrency  string
}

// NewCashBoxService creates the project cash box service. fundingAccountID
// is the account credited by top-ups when the request names no source.
func NewCashBoxService(
	cashBoxRepo portsrepo.CashBoxRepository,
	ledgerRepo portsrepo.LedgerRepository,
	projectRepo portsrepo.ProjectRepository,
	accountRepo portsrepo.AccountRepository,
	referenceRepo portsrepo.ReferenceRepository,
	fundingAccountID int64,
	defaultCurrency string,
) portssvc.CashBoxService {
	return &cashBoxService{
		cashBoxRepo:      cashBoxRepo,
		ledgerRepo:       ledgerRepo,
		projectRepo:      projectRepo,
		accountRepo:      accountRepo,
		referenceRepo:    referenceRepo,
		fundingAccountID: fundingAccountID,
		defaultCurrency:  defaultCurrency,
	}
}

var _ portssvc.CashBoxService = (*cashBoxService)(nil)

// CreateCashBox creates the box and its backing ASSET account atomically.
// A project holds at most one box.
func (s *cashBoxService) CreateCashBox(ctx context.Context, projectID int64, req dto.CreateCashBoxRequest, userID string) (*domain.ProjectCashBox, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	box := domain.ProjectCashBox{
		ProjectID: projectID,
		Manager:   req.Manager,
	}
	backing := domain.Account{
		Label:       fmt.Sprintf("Caisse - %s", project.Name),
		AccountType: domain.Asset,
	}
	saved, err := s.cashBoxRepo.SaveCashBox(ctx, box, backing)
	if err != nil {
		s.LogError(ctx, err, "Failed to create cash box", slog.Int64("project_id", projectID))
		return nil, err
	}
	s.LogInfo(ctx, "Cash box created",
		slog.Int64("cash_box_id", saved.CashBoxID),
		slog.Int64("project_id", projectID),
		slog.Int64("account_id", saved.AccountID),
		slog.String("created_by", userID))
	return saved, nil
}

// Balance derives the box balance from the ledger. Nothing is stored; every
// call replays the account's full line set.
func (s *cashBoxService) Balance(ctx context.Context, projectID int64) (*domain.CashBoxBalance, error) {
	box, err := s.cashBoxRepo.FindCashBoxByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	balanceMinor, lastOperation, err := s.ledgerRepo.AccountActivity(ctx, box.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to derive cash box balance", slog.Int64("account_id", box.AccountID))
		return nil, err
	}
	return &domain.CashBoxBalance{
		BalanceMinor:  balanceMinor,
		CurrencyCode:  s.defaultCurrency,
		LastOperation: lastOperation,
	}, nil
}

// TopUp posts a line debiting the box account and crediting the funding
// account, increasing the box balance under the debit-positive convention.
func (s *cashBoxService) TopUp(ctx context.Context, projectID int64, req dto.CashTopUpRequest, userID string) (*domain.LedgerLine, error) {
	box, err := s.cashBoxRepo.FindCashBoxByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	amountMinor, err := majorToMinor(req.Amount)
	if err != nil {
		return nil, err
	}
	if _, err := s.referenceRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		return nil, badReference(err, "unknown currency %q", req.CurrencyCode)
	}

	sourceAccountID := s.fundingAccountID
	if req.SourceAccountID != nil {
		sourceAccountID = *req.SourceAccountID
	}
	if sourceAccountID == box.AccountID {
		return nil, fmt.Errorf("%w: a cash box cannot fund itself", apperrors.ErrValidation)
	}
	if req.SourceAccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, sourceAccountID); err != nil {
			return nil, badReference(err, "unknown source account %d", sourceAccountID)
		}
	}

	line := domain.LedgerLine{
		DebitAccountID:  box.AccountID,
		CreditAccountID: sourceAccountID,
		AmountMinor:     amountMinor,
		CurrencyCode:    req.CurrencyCode,
		FxRate:          req.FxRate,
		OperationDate:   time.Now().UTC(),
		Memo:            req.Memo,
		CreatedBy:       userID,
	}
	saved, err := s.ledgerRepo.SaveLine(ctx, line)
	if err != nil {
		s.LogError(ctx, err, "Failed to post cash box top-up", slog.Int64("project_id", projectID))
		return nil, err
	}
	s.LogInfo(ctx, "Cash box topped up",
		slog.Int64("project_id", projectID),
		slog.Int64("line_id", saved.LineID),
		slog.Int64("amount_minor", saved.AmountMinor))
	return saved, nil
}

// Expense posts a line crediting the box account and debiting the expense
// account bound to the category, decreasing the box balance.
func (s *cashBoxService) Expense(ctx context.Context, projectID int64, req dto.CashExpenseRequest, userID string) (*domain.LedgerLine, error) {
	box, err := s.cashBoxRepo.FindCashBoxByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	amountMinor, err := majorToMinor(req.Amount)
	if err != nil {
		return nil, err
	}
	if _, err := s.referenceRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		return nil, badReference(err, "unknown currency %q", req.CurrencyCode)
	}
	category, err := s.referenceRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, badReference(err, "unknown expense category %d", req.CategoryID)
	}
	if category.AccountID == nil {
		return nil, fmt.Errorf("%w: expense category %q has no expense account bound", apperrors.ErrValidation, category.Label)
	}

	line := domain.LedgerLine{
		DebitAccountID:  *category.AccountID,
		CreditAccountID: box.AccountID,
		AmountMinor:     amountMinor,
		CurrencyCode:    req.CurrencyCode,
		OperationDate:   time.Now().UTC(),
		CategoryID:      &category.CategoryID,
		Memo:            req.Memo,
		CreatedBy:       userID,
	}
	saved, err := s.ledgerRepo.SaveLine(ctx, line)
	if err != nil {
		s.LogError(ctx, err, "Failed to post cash box expense", slog.Int64("project_id", projectID))
		return nil, err
	}
	s.LogInfo(ctx, "Cash box expense posted",
		slog.Int64("project_id", projectID),
		slog.Int64("line_id", saved.LineID),
		slog.Int64("category_id", category.CategoryID),
		slog.Int64("amount_minor", saved.AmountMinor))
	return saved, nil
}

// Statement returns one page of the box's ledger lines, newest first, each
// tagged IN or OUT by which side of the line the box account sits on, with a
// running balance. The opening balance of the page is derived from every
// line older than the page, then replayed forward.
func (s *cashBoxService) Statement(ctx context.Context, projectID int64, limit, offset int) ([]domain.CashStatementEntry, error) {
	box, err := s.cashBoxRepo.FindCashBoxByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	lines, categoryLabels, err := s.ledgerRepo.ListLinesForAccount(ctx, box.AccountID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash box lines", slog.Int64("account_id", box.AccountID))
		return nil, err
	}
	if len(lines) == 0 {
		return []domain.CashStatementEntry{}, nil
	}

	// Page is newest first; the oldest line in it anchors the opening balance.
	oldest := lines[len(lines)-1]
	openingMinor, err := s.ledgerRepo.BalanceBefore(ctx, box.AccountID, oldest.OperationDate, oldest.LineID)
	if err != nil {
		s.LogError(ctx, err, "Failed to derive statement opening balance", slog.Int64("account_id", box.AccountID))
		return nil, err
	}

	entries := make([]flow.Entry[int64], len(lines))
	for i := range lines {
		line := lines[len(lines)-1-i]
		entries[i] = flow.Entry[int64]{
			From: &line.CreditAccountID,
			To:   &line.DebitAccountID,
			Qty:  decimal.New(line.AmountMinor, 0),
		}
	}
	running := flow.Running(box.AccountID, decimal.New(openingMinor, 0), entries)

	statement := make([]domain.CashStatementEntry, len(lines))
	for i, line := range lines {
		j := len(lines) - 1 - i
		direction, _ := flow.DirectionOf(box.AccountID, entries[j])
		statement[i] = domain.CashStatementEntry{
			LineID:            line.LineID,
			OperationDate:     line.OperationDate,
			Direction:         direction,
			AmountMinor:       line.AmountMinor,
			CurrencyCode:      line.CurrencyCode,
			Memo:              line.Memo,
			CategoryLabel:     categoryLabels[line.LineID],
			BalanceAfterMinor: running[j].IntPart(),
		}
	}
	return statement, nil
}

// majorToMinor converts a major-unit amount to integer minor units,
// rejecting non-positive amounts and sub-centime precision.
func majorToMinor(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	minor := amount.Shift(2)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: amount has sub-centime precision", apperrors.ErrValidation)
	}
	return minor.IntPart(), nil
}
