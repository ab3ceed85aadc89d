package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/core/services"
	"github.com/protecfeu/erp_backend/internal/dto"
)

const (
	testFundingAccountID = int64(1)
	testDefaultCurrency  = "MAD"
)

type CashBoxServiceTestSuite struct {
	suite.Suite
	mockCashBoxRepo   *MockCashBoxRepository
	mockLedgerRepo    *MockLedgerRepository
	mockProjectRepo   *MockProjectRepository
	mockAccountRepo   *MockAccountRepository
	mockReferenceRepo *MockReferenceRepository
	service           portssvc.CashBoxService
	ctx               context.Context
}

func (suite *CashBoxServiceTestSuite) SetupTest() {
	suite.mockCashBoxRepo = new(MockCashBoxRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockReferenceRepo = new(MockReferenceRepository)
	suite.service = services.NewCashBoxService(
		suite.mockCashBoxRepo,
		suite.mockLedgerRepo,
		suite.mockProjectRepo,
		suite.mockAccountRepo,
		suite.mockReferenceRepo,
		testFundingAccountID,
		testDefaultCurrency,
	)
	suite.ctx = context.Background()
}

func (suite *CashBoxServiceTestSuite) TestCreateCashBoxBuildsBackingAccount() {
	project := &domain.Project{ProjectID: 3, Name: "Villa Anfa"}

	suite.mockProjectRepo.On("FindProjectByID", suite.ctx, int64(3)).Return(project, nil).Once()
	suite.mockCashBoxRepo.On("SaveCashBox", suite.ctx,
		domain.ProjectCashBox{ProjectID: 3, Manager: "K. Alaoui"},
		mock.MatchedBy(func(backing domain.Account) bool {
			return backing.Label == "Caisse - Villa Anfa" && backing.AccountType == domain.Asset
		}),
	).Return(&domain.ProjectCashBox{CashBoxID: 1, ProjectID: 3, AccountID: 5, Manager: "K. Alaoui"}, nil).Once()

	box, err := suite.service.CreateCashBox(suite.ctx, 3, dto.CreateCashBoxRequest{Manager: "K. Alaoui"}, "user-1")

	suite.NoError(err)
	suite.Equal(int64(5), box.AccountID)
	suite.mockCashBoxRepo.AssertExpectations(suite.T())
}

func (suite *CashBoxServiceTestSuite) TestCreateCashBoxUnknownProject() {
	suite.mockProjectRepo.On("FindProjectByID", suite.ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	box, err := suite.service.CreateCashBox(suite.ctx, 42, dto.CreateCashBoxRequest{}, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(box)
	suite.mockCashBoxRepo.AssertNotCalled(suite.T(), "SaveCashBox", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashBoxServiceTestSuite) TestBalanceDerivedFromLedger() {
	box := &domain.ProjectCashBox{CashBoxID: 1, ProjectID: 3, AccountID: 5}
	last := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	suite.mockCashBoxRepo.On("FindCashBoxByProjectID", suite.ctx, int64(3)).Return(box, nil).Once()
	suite.mockLedgerRepo.On("AccountActivity", suite.ctx, int64(5)).Return(int64(12500), &last, nil).Once()

	balance, err := suite.service.Balance(suite.ctx, 3)

	suite.NoError(err)
	suite.Equal(int64(12500), balance.BalanceMinor)
	suite.Equal(testDefaultCurrency, balance.CurrencyCode)
	suite.Equal(&last, balance.LastOperation)
}

func (suite *CashBoxServiceTestSuite) TestTopUpDebitsBoxCreditsFundingAccount() {
	box := &domain.ProjectCashBox{CashBoxID: 1, ProjectID: 3, AccountID: 5}
	req := dto.CashTopUpRequest{
		Amount:       decimal.RequireFromString("150.00"),
		CurrencyCode: "MAD",
		Memo:         "Avance chantier",
	}

	suite.mockCashBoxRepo.On("FindCashBoxByProjectID", suite.ctx, int64(3)).Return(box, nil).Once()
	suite.mockReferenceRepo.On("FindCurrencyByCode", suite.ctx, "MAD").Return(&domain.Currency{Code: "MAD"}, nil).Once()
	suite.mockLedgerRepo.On("SaveLine", suite.ctx, mock.MatchedBy(func(line domain.LedgerLine) bool {
		return line.DebitAccountID == 5 &&
			line.CreditAccountID == testFundingAccountID &&
			line.AmountMinor == 15000
	})).Return(&domain.LedgerLine{LineID: 9, DebitAccountID: 5, CreditAccountID: 1, AmountMinor: 15000}, nil).Once()

	line, err := suite.service.TopUp(suite.ctx, 3, req, "user-1")

	suite.NoError(err)
	suite.Equal(int64(15000), line.AmountMinor)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *CashBoxServiceTestSuite) TestTopUpRejectsBoxFundingItself() {
	box := &domain.ProjectCashBox{CashBoxID: 1, ProjectID: 3, AccountID: 5}
	source := int64(5)
	req := dto.CashTopUpRequest{
		Amount:          decimal.RequireFromString("10.00"),
		CurrencyCode:    "MAD",
		SourceAccountID: &source,
	}

	suite.mockCashBoxRepo.On("FindCashBoxByProjectID", suite.ctx, int64(3)).Return(box, nil).Once()
	suite.mockReferenceRepo.On("FindCurrencyByCode", suite.ctx, "MAD").Return(&domain.Currency{Code: "MAD"}, nil).Once()

	line, err := suite.service.TopUp(suite.ctx, 3, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(line)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLine", mock.Anything, mock.Anything)
}

func (suite *CashBoxServiceTestSuite) TestTopUpUnknownSourceAccount() {
	box := &domain.ProjectCashBox{CashBoxID: 1, ProjectID: 3, AccountID: 5}
	source := int64(77)
	req := dto.CashTopUpRequest{
		Amount:          decimal.RequireFromString("10.00"),
		CurrencyCode:    "MAD",
		SourceAccountID: &source,
	}

	suite.mockCashBoxRepo.On("FindCashBoxByProjectID", suite.ctx, int64(3)).Return(box, nil).Once()
	suite.mockReferenceRepo.On("FindCurrencyByCode", suite.ctx, "MAD").Return(&domain.Currency{Code: "MAD"}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, int64(77)).Return(nil, apperrors.ErrNotFound).Once()

	line, err := suite.service.TopUp(suite.ctx, 3, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(line)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLine", mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *CashBoxServiceTestSuite) TestTopUpRejectsSubCentimeAmount() {
	box := &domain.ProjectCashBox{CashBoxID: 1, ProjectID: 3, AccountID: 5}
	req := dto.CashTopUpRequest{
		Amount:       decimal.RequireFromString("10.005"),
		CurrencyCode: "MAD",
	}

	suite.mockCashBoxRepo.On("FindCashBoxByProjectID", suite.ctx, int64(3)).Return(box, nil).Once()

	line, err := suite.service.TopUp(suite.ctx, 3, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(line)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLine", mock.Anything, mock.Anything)
}

func (suite *CashBoxServiceTestSuite) TestExpenseDebitsCategoryAccount() {
	box := &domain.ProjectCashBox{CashBoxID: 1, ProjectID: 3, AccountID: 5}
	expenseAccountID := int64(40)
	category := &domain.ExpenseCategory{CategoryID: 7, Label: "Carburant", AccountID: &expenseAccountID}
	req := dto.CashExpenseRequest{
		Amount:       decimal.RequireFromString("25.00"),
		CurrencyCode: "MAD",
		CategoryID:   7,
	}

	suite.mockCashBoxRepo.On("FindCashBoxByProjectID", suite.ctx, int64(3)).Return(box, nil).Once()
	suite.mockReferenceRepo.On("FindCurrencyByCode", suite.ctx, "MAD").Return(&domain.Currency{Code: "MAD"}, nil).Once()
	suite.mockReferenceRepo.On("FindCategoryByID", suite.ctx, int64(7)).Return(category, nil).Once()
	suite.mockLedgerRepo.On("SaveLine", suite.ctx, mock.MatchedBy(func(line domain.LedgerLine) bool {
		return line.DebitAccountID == expenseAccountID &&
			line.CreditAccountID == 5 &&
			line.AmountMinor == 2500 &&
			line.CategoryID != nil && *line.CategoryID == 7
	})).Return(&domain.LedgerLine{LineID: 11, AmountMinor: 2500}, nil).Once()

	line, err := suite.service.Expense(suite.ctx, 3, req, "user-1")

	suite.NoError(err)
	suite.Equal(int64(2500), line.AmountMinor)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *CashBoxServiceTestSuite) TestExpenseRejectsUnboundCategory() {
	box := &domain.ProjectCashBox{CashBoxID: 1, ProjectID: 3, AccountID: 5}
	category := &domain.ExpenseCategory{CategoryID: 7, Label: "Divers"}
	req := dto.CashExpenseRequest{
		Amount:       decimal.RequireFromString("25.00"),
		CurrencyCode: "MAD",
		CategoryID:   7,
	}

	suite.mockCashBoxRepo.On("FindCashBoxByProjectID", suite.ctx, int64(3)).Return(box, nil).Once()
	suite.mockReferenceRepo.On("FindCurrencyByCode", suite.ctx, "MAD").Return(&domain.Currency{Code: "MAD"}, nil).Once()
	suite.mockReferenceRepo.On("FindCategoryByID", suite.ctx, int64(7)).Return(category, nil).Once()

	line, err := suite.service.Expense(suite.ctx, 3, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(line)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLine", mock.Anything, mock.Anything)
}

func (suite *CashBoxServiceTestSuite) TestStatementRunningBalance() {
	box := &domain.ProjectCashBox{CashBoxID: 1, ProjectID: 3, AccountID: 5}
	day := func(d int) time.Time { return time.Date(2026, 8, d, 12, 0, 0, 0, time.UTC) }
	// Newest first, as the repository returns them.
	lines := []domain.LedgerLine{
		{LineID: 3, DebitAccountID: 5, CreditAccountID: 1, AmountMinor: 10000, CurrencyCode: "MAD", OperationDate: day(20)},
		{LineID: 2, DebitAccountID: 40, CreditAccountID: 5, AmountMinor: 2500, CurrencyCode: "MAD", OperationDate: day(15)},
		{LineID: 1, DebitAccountID: 5, CreditAccountID: 1, AmountMinor: 5000, CurrencyCode: "MAD", OperationDate: day(10)},
	}
	labels := map[int64]string{2: "Carburant"}

	suite.mockCashBoxRepo.On("FindCashBoxByProjectID", suite.ctx, int64(3)).Return(box, nil).Once()
	suite.mockLedgerRepo.On("ListLinesForAccount", suite.ctx, int64(5), 20, 0).Return(lines, labels, nil).Once()
	suite.mockLedgerRepo.On("BalanceBefore", suite.ctx, int64(5), day(10), int64(1)).Return(int64(0), nil).Once()

	statement, err := suite.service.Statement(suite.ctx, 3, 20, 0)

	suite.NoError(err)
	suite.Len(statement, 3)

	suite.Equal(int64(3), statement[0].LineID)
	suite.Equal(domain.DirectionIn, statement[0].Direction)
	suite.Equal(int64(12500), statement[0].BalanceAfterMinor)

	suite.Equal(int64(2), statement[1].LineID)
	suite.Equal(domain.DirectionOut, statement[1].Direction)
	suite.Equal(int64(2500), statement[1].BalanceAfterMinor)
	suite.Equal("Carburant", statement[1].CategoryLabel)

	suite.Equal(int64(1), statement[2].LineID)
	suite.Equal(domain.DirectionIn, statement[2].Direction)
	suite.Equal(int64(5000), statement[2].BalanceAfterMinor)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *CashBoxServiceTestSuite) TestStatementEmptyPage() {
	box := &domain.ProjectCashBox{CashBoxID: 1, ProjectID: 3, AccountID: 5}

	suite.mockCashBoxRepo.On("FindCashBoxByProjectID", suite.ctx, int64(3)).Return(box, nil).Once()
	suite.mockLedgerRepo.On("ListLinesForAccount", suite.ctx, int64(5), 20, 0).Return([]domain.LedgerLine{}, map[int64]string{}, nil).Once()

	statement, err := suite.service.Statement(suite.ctx, 3, 20, 0)

	suite.NoError(err)
	suite.Empty(statement)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "BalanceBefore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCashBoxServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashBoxServiceTestSuite))
}
