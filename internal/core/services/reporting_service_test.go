package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/protecfeu/erp_backend/internal/core/domain"
	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingService
	ctx               context.Context
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, testDefaultCurrency)
	suite.ctx = context.Background()
}

func (suite *ReportingServiceTestSuite) TestTrialBalancePassesRowsThrough() {
	rows := []domain.TrialBalanceRow{
		{AccountID: 1, Label: "Banque principale", AccountType: domain.Asset, BalanceMinor: 120000},
		{AccountID: 30, Label: "Ventes", AccountType: domain.Income, BalanceMinor: -120000},
	}

	suite.mockReportingRepo.On("TrialBalance", suite.ctx).Return(rows, nil).Once()

	report, err := suite.service.TrialBalance(suite.ctx)

	suite.NoError(err)
	suite.Equal(rows, report)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLossComputesNet() {
	suite.mockReportingRepo.On("ProfitAndLossTotals", suite.ctx).Return(int64(250000), int64(180000), nil).Once()

	report, err := suite.service.ProfitAndLoss(suite.ctx)

	suite.NoError(err)
	suite.Equal(int64(250000), report.TotalIncomeMinor)
	suite.Equal(int64(180000), report.TotalExpensesMinor)
	suite.Equal(int64(70000), report.NetProfitMinor)
	suite.Equal(testDefaultCurrency, report.CurrencyCode)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLossNetCanBeNegative() {
	suite.mockReportingRepo.On("ProfitAndLossTotals", suite.ctx).Return(int64(50000), int64(80000), nil).Once()

	report, err := suite.service.ProfitAndLoss(suite.ctx)

	suite.NoError(err)
	suite.Equal(int64(-30000), report.NetProfitMinor)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLossPropagatesError() {
	repoErr := errors.New("connection refused")
	suite.mockReportingRepo.On("ProfitAndLossTotals", suite.ctx).Return(int64(0), int64(0), repoErr).Once()

	report, err := suite.service.ProfitAndLoss(suite.ctx)

	suite.ErrorIs(err, repoErr)
	suite.Nil(report)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
