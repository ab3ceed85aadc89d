package services

import (
	"context"

	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	reportingRepo   portsrepo.ReportingRepository
	defaultCurrency string
}

// NewReportingService creates the financial reporting service. Reports are
// always derived from the full line set; nothing is cached or stored.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, defaultCurrency string) portssvc.ReportingService {
	return &reportingService{
		reportingRepo:   reportingRepo,
		defaultCurrency: defaultCurrency,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	report, err := s.reportingRepo.TrialBalance(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute trial balance")
		return nil, err
	}
	return report, nil
}

func (s *reportingService) ProfitAndLoss(ctx context.Context) (*domain.ProfitAndLoss, error) {
	incomeMinor, expensesMinor, err := s.reportingRepo.ProfitAndLossTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute profit and loss")
		return nil, err
	}
	return &domain.ProfitAndLoss{
		TotalIncomeMinor:   incomeMinor,
		TotalExpensesMinor: expensesMinor,
		NetProfitMinor:     incomeMinor - expensesMinor,
		CurrencyCode:       s.defaultCurrency,
	}, nil
}
