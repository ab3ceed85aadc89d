package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
)

type referenceService struct {
	BaseService
	referenceRepo portsrepo.ReferenceRepository
	accountRepo   portsrepo.AccountRepository
}

// NewReferenceService creates the reference-data service.
func NewReferenceService(referenceRepo portsrepo.ReferenceRepository, accountRepo portsrepo.AccountRepository) portssvc.ReferenceService {
	return &referenceService{
		referenceRepo: referenceRepo,
		accountRepo:   accountRepo,
	}
}

var _ portssvc.ReferenceService = (*referenceService)(nil)

func (s *referenceService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	currency := domain.Currency{
		Code:  strings.ToUpper(req.Code),
		Label: req.Label,
	}
	if err := s.referenceRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("code", currency.Code))
		return nil, err
	}
	return &currency, nil
}

func (s *referenceService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	return s.referenceRepo.FindCurrencyByCode(ctx, strings.ToUpper(code))
}

func (s *referenceService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.referenceRepo.ListCurrencies(ctx)
}

func (s *referenceService) CreateCategory(ctx context.Context, req dto.CreateExpenseCategoryRequest) (*domain.ExpenseCategory, error) {
	if req.AccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.AccountID); err != nil {
			return nil, badReference(err, "unknown expense account %d", *req.AccountID)
		}
	}
	category := domain.ExpenseCategory{
		Label:     req.Label,
		AccountID: req.AccountID,
	}
	saved, err := s.referenceRepo.SaveCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to save expense category", slog.String("label", req.Label))
		return nil, err
	}
	return saved, nil
}

func (s *referenceService) ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	return s.referenceRepo.ListCategories(ctx)
}

func (s *referenceService) CreateDeliveryStatus(ctx context.Context, req dto.CreateDeliveryStatusRequest) (*domain.DeliveryStatus, error) {
	saved, err := s.referenceRepo.SaveDeliveryStatus(ctx, domain.DeliveryStatus{Label: req.Label})
	if err != nil {
		s.LogError(ctx, err, "Failed to save delivery status", slog.String("label", req.Label))
		return nil, err
	}
	return saved, nil
}

func (s *referenceService) ListDeliveryStatuses(ctx context.Context) ([]domain.DeliveryStatus, error) {
	return s.referenceRepo.ListDeliveryStatuses(ctx)
}
