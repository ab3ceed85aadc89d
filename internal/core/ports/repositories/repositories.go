package repositories

import (
	"context"

	"github.com/protecfeu/erp_backend/internal/core/domain"
)

// ProjectRepository persists projects.
type ProjectRepository interface {
	SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error)
	ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error)
}

// DeliveryRepository persists deliveries.
type DeliveryRepository interface {
	SaveDelivery(ctx context.Context, delivery domain.Delivery) (*domain.Delivery, error)
	FindDeliveryByID(ctx context.Context, deliveryID int64) (*domain.Delivery, error)
	ListDeliveries(ctx context.Context, limit, offset int) ([]domain.Delivery, error)
	UpdateDeliveryStatus(ctx context.Context, deliveryID, statusID int64) error
}

// ReferenceRepository persists the reference-data lookup tables: currencies,
// expense categories and delivery statuses.
type ReferenceRepository interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	SaveCategory(ctx context.Context, category domain.ExpenseCategory) (*domain.ExpenseCategory, error)
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.ExpenseCategory, error)
	ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
	SaveDeliveryStatus(ctx context.Context, status domain.DeliveryStatus) (*domain.DeliveryStatus, error)
	FindDeliveryStatusByID(ctx context.Context, statusID int64) (*domain.DeliveryStatus, error)
	ListDeliveryStatuses(ctx context.Context) ([]domain.DeliveryStatus, error)
}

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	LedgerRepo    LedgerRepository
	CashBoxRepo   CashBoxRepository
	ReportingRepo ReportingRepository
	ProductRepo   ProductRepository
	StockRepo     StockRepository
	ProjectRepo   ProjectRepository
	DeliveryRepo  DeliveryRepository
	ReferenceRepo ReferenceRepository
}
