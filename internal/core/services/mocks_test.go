package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockLedgerRepository is a mock type for the LedgerRepository interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SaveLine(ctx context.Context, line domain.LedgerLine) (*domain.LedgerLine, error) {
	args := m.Called(ctx, line)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerLine), args.Error(1)
}

func (m *MockLedgerRepository) FindLineByID(ctx context.Context, lineID int64) (*domain.LedgerLine, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerLine), args.Error(1)
}

func (m *MockLedgerRepository) ListLines(ctx context.Context, filter portsrepo.LedgerLineFilter) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

func (m *MockLedgerRepository) ListLinesForAccount(ctx context.Context, accountID int64, limit, offset int) ([]domain.LedgerLine, map[int64]string, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerLine), args.Get(1).(map[int64]string), args.Error(2)
}

func (m *MockLedgerRepository) AccountActivity(ctx context.Context, accountID int64) (int64, *time.Time, error) {
	args := m.Called(ctx, accountID)
	var last *time.Time
	if args.Get(1) != nil {
		last = args.Get(1).(*time.Time)
	}
	return args.Get(0).(int64), last, args.Error(2)
}

func (m *MockLedgerRepository) BalanceBefore(ctx context.Context, accountID int64, before time.Time, beforeLineID int64) (int64, error) {
	args := m.Called(ctx, accountID, before, beforeLineID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCashBoxRepository is a mock type for the CashBoxRepository interface
type MockCashBoxRepository struct {
	mock.Mock
}

func (m *MockCashBoxRepository) SaveCashBox(ctx context.Context, box domain.ProjectCashBox, backing domain.Account) (*domain.ProjectCashBox, error) {
	args := m.Called(ctx, box, backing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectCashBox), args.Error(1)
}

func (m *MockCashBoxRepository) FindCashBoxByProjectID(ctx context.Context, projectID int64) (*domain.ProjectCashBox, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectCashBox), args.Error(1)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) ProfitAndLossTotals(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// MockReferenceRepository is a mock type for the ReferenceRepository interface
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockReferenceRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockReferenceRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockReferenceRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

func (m *MockReferenceRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

func (m *MockReferenceRepository) ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}

func (m *MockReferenceRepository) SaveDeliveryStatus(ctx context.Context, status domain.DeliveryStatus) (*domain.DeliveryStatus, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryStatus), args.Error(1)
}

func (m *MockReferenceRepository) FindDeliveryStatusByID(ctx context.Context, statusID int64) (*domain.DeliveryStatus, error) {
	args := m.Called(ctx, statusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryStatus), args.Error(1)
}

func (m *MockReferenceRepository) ListDeliveryStatuses(ctx context.Context) ([]domain.DeliveryStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeliveryStatus), args.Error(1)
}

// MockProjectRepository is a mock type for the ProjectRepository interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

// MockProductRepository is a mock type for the ProductRepository interface
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	args := m.Called(ctx, article)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockProductRepository) FindArticleByID(ctx context.Context, articleID int64) (*domain.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockProductRepository) ListArticles(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

// MockStockRepository is a mock type for the StockRepository interface
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) SaveLocation(ctx context.Context, location domain.StockLocation) (*domain.StockLocation, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockLocation), args.Error(1)
}

func (m *MockStockRepository) FindLocationByID(ctx context.Context, locationID int64) (*domain.StockLocation, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockLocation), args.Error(1)
}

func (m *MockStockRepository) ListLocations(ctx context.Context, limit, offset int) ([]domain.StockLocation, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockLocation), args.Error(1)
}

func (m *MockStockRepository) SaveMove(ctx context.Context, move domain.StockMove) (*domain.StockMove, error) {
	args := m.Called(ctx, move)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMove), args.Error(1)
}

func (m *MockStockRepository) FindMoveByID(ctx context.Context, moveID int64) (*domain.StockMove, error) {
	args := m.Called(ctx, moveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMove), args.Error(1)
}

func (m *MockStockRepository) ListMoves(ctx context.Context, filter portsrepo.StockMoveFilter) ([]domain.StockMove, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMove), args.Error(1)
}

func (m *MockStockRepository) LocationInventory(ctx context.Context, locationID int64) ([]domain.InventoryRow, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryRow), args.Error(1)
}

func (m *MockStockRepository) ListMovesForArticleAt(ctx context.Context, locationID, articleID int64) ([]domain.StockMove, error) {
	args := m.Called(ctx, locationID, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMove), args.Error(1)
}

// MockDeliveryRepository is a mock type for the DeliveryRepository interface
type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) SaveDelivery(ctx context.Context, delivery domain.Delivery) (*domain.Delivery, error) {
	args := m.Called(ctx, delivery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) FindDeliveryByID(ctx context.Context, deliveryID int64) (*domain.Delivery, error) {
	args := m.Called(ctx, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) ListDeliveries(ctx context.Context, limit, offset int) ([]domain.Delivery, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) UpdateDeliveryStatus(ctx context.Context, deliveryID, statusID int64) error {
	args := m.Called(ctx, deliveryID, statusID)
	return args.Error(0)
}
