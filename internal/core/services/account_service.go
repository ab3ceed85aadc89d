package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates the ledger account service.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountService {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountService = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	accountType := domain.AccountType(req.AccountType)
	if !domain.ValidAccountType(accountType) {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	account := domain.Account{
		Label:       req.Label,
		AccountType: accountType,
	}
	saved, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("label", req.Label))
		return nil, err
	}
	s.LogInfo(ctx, "Account created",
		slog.Int64("account_id", saved.AccountID),
		slog.String("account_type", string(saved.AccountType)),
		slog.String("created_by", userID))
	return saved, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}
