package services

import (
	"context"

	"github.com/protecfeu/erp_backend/internal/core/domain"
	"github.com/protecfeu/erp_backend/internal/dto"
)

// InventoryService manages the product catalogue, stock locations and the
// append-only stock move journal.
type InventoryService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error)
	CreateArticle(ctx context.Context, req dto.CreateArticleRequest) (*domain.Article, error)
	GetArticleByID(ctx context.Context, articleID int64) (*domain.Article, error)
	ListArticles(ctx context.Context, limit, offset int) ([]domain.Article, error)
	CreateLocation(ctx context.Context, req dto.CreateStockLocationRequest) (*domain.StockLocation, error)
	GetLocationByID(ctx context.Context, locationID int64) (*domain.StockLocation, error)
	ListLocations(ctx context.Context, limit, offset int) ([]domain.StockLocation, error)
	PostMove(ctx context.Context, req dto.CreateStockMoveRequest, userID string) (*domain.StockMove, error)
	GetMoveByID(ctx context.Context, moveID int64) (*domain.StockMove, error)
	ListMoves(ctx context.Context, articleID, locationID *int64, limit, offset int) ([]domain.StockMove, error)
	LocationInventory(ctx context.Context, locationID int64) ([]domain.InventoryRow, error)
	ArticleHistory(ctx context.Context, locationID, articleID int64) ([]domain.ArticleMovement, error)
}

// ProjectService manages projects.
type ProjectService interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	GetProjectByID(ctx context.Context, projectID int64) (*domain.Project, error)
	ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error)
}

// DeliveryService manages deliveries.
type DeliveryService interface {
	CreateDelivery(ctx context.Context, req dto.CreateDeliveryRequest, userID string) (*domain.Delivery, error)
	GetDeliveryByID(ctx context.Context, deliveryID int64) (*domain.Delivery, error)
	ListDeliveries(ctx context.Context, limit, offset int) ([]domain.Delivery, error)
	UpdateDeliveryStatus(ctx context.Context, deliveryID int64, req dto.UpdateDeliveryStatusRequest) error
}

// ReferenceService manages the reference-data lookup tables.
type ReferenceService interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	CreateCategory(ctx context.Context, req dto.CreateExpenseCategoryRequest) (*domain.ExpenseCategory, error)
	ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
	CreateDeliveryStatus(ctx context.Context, req dto.CreateDeliveryStatusRequest) (*domain.DeliveryStatus, error)
	ListDeliveryStatuses(ctx context.Context) ([]domain.DeliveryStatus, error)
}

// ServiceContainer bundles every service implementation for route
// registration.
type ServiceContainer struct {
	Account   AccountService
	Ledger    LedgerService
	Reporting ReportingService
	CashBox   CashBoxService
	Inventory InventoryService
	Project   ProjectService
	Delivery  DeliveryService
	Reference ReferenceService
}
