package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
)

type ledgerService struct {
	BaseService
	ledgerRepo    portsrepo.LedgerRepository
	accountRepo   portsrepo.AccountRepository
	referenceRepo portsrepo.ReferenceRepository
}

// NewLedgerService creates the ledger posting service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, accountRepo portsrepo.AccountRepository, referenceRepo portsrepo.ReferenceRepository) portssvc.LedgerService {
	return &ledgerService{
		ledgerRepo:    ledgerRepo,
		accountRepo:   accountRepo,
		referenceRepo: referenceRepo,
	}
}

var _ portssvc.LedgerService = (*ledgerService)(nil)

// PostLine validates and appends one double-entry line. Both accounts must
// exist and be distinct, the currency must be registered, and the category,
// when given, must exist. The amount must be a positive integer of minor
// units; binding already enforces that but the service re-checks since it is
// the invariant everything downstream relies on.
func (s *ledgerService) PostLine(ctx context.Context, req dto.CreateLedgerLineRequest, userID string) (*domain.LedgerLine, error) {
	if req.AmountMinor <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.DebitAccountID == req.CreditAccountID {
		return nil, fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []int64{req.DebitAccountID, req.CreditAccountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve accounts for ledger line")
		return nil, err
	}
	if _, ok := accounts[req.DebitAccountID]; !ok {
		return nil, fmt.Errorf("%w: unknown debit account %d", apperrors.ErrValidation, req.DebitAccountID)
	}
	if _, ok := accounts[req.CreditAccountID]; !ok {
		return nil, fmt.Errorf("%w: unknown credit account %d", apperrors.ErrValidation, req.CreditAccountID)
	}

	if _, err := s.referenceRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		return nil, badReference(err, "unknown currency %q", req.CurrencyCode)
	}
	if req.CategoryID != nil {
		if _, err := s.referenceRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, badReference(err, "unknown expense category %d", *req.CategoryID)
		}
	}

	line := domain.LedgerLine{
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		AmountMinor:     req.AmountMinor,
		CurrencyCode:    req.CurrencyCode,
		FxRate:          req.FxRate,
		OperationDate:   time.Now().UTC(),
		CategoryID:      req.CategoryID,
		Memo:            req.Memo,
		CreatedBy:       userID,
	}
	saved, err := s.ledgerRepo.SaveLine(ctx, line)
	if err != nil {
		s.LogError(ctx, err, "Failed to post ledger line")
		return nil, err
	}
	s.LogInfo(ctx, "Ledger line posted",
		slog.Int64("line_id", saved.LineID),
		slog.Int64("debit_account_id", saved.DebitAccountID),
		slog.Int64("credit_account_id", saved.CreditAccountID),
		slog.Int64("amount_minor", saved.AmountMinor))
	return saved, nil
}

func (s *ledgerService) GetLineByID(ctx context.Context, lineID int64) (*domain.LedgerLine, error) {
	return s.ledgerRepo.FindLineByID(ctx, lineID)
}

func (s *ledgerService) ListLines(ctx context.Context, accountID *int64, limit, offset int) ([]domain.LedgerLine, error) {
	filter := portsrepo.LedgerLineFilter{
		AccountID: accountID,
		Limit:     limit,
		Offset:    offset,
	}
	return s.ledgerRepo.ListLines(ctx, filter)
}
