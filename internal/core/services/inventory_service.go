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

type inventoryService struct {
	BaseService
	productRepo   portsrepo.ProductRepository
	stockRepo     portsrepo.StockRepository
	referenceRepo portsrepo.ReferenceRepository
}

// NewInventoryService creates the catalogue and stock service.
func NewInventoryService(productRepo portsrepo.ProductRepository, stockRepo portsrepo.StockRepository, referenceRepo portsrepo.ReferenceRepository) portssvc.InventoryService {
	return &inventoryService{
		productRepo:   productRepo,
		stockRepo:     stockRepo,
		referenceRepo: referenceRepo,
	}
}

var _ portssvc.InventoryService = (*inventoryService)(nil)

func (s *inventoryService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	product := domain.Product{
		Code:        req.Code,
		Label:       req.Label,
		Description: req.Description,
	}
	saved, err := s.productRepo.SaveProduct(ctx, product)
	if err != nil {
		s.LogError(ctx, err, "Failed to create product", slog.String("code", req.Code))
		return nil, err
	}
	s.LogInfo(ctx, "Product created", slog.Int64("product_id", saved.ProductID), slog.String("code", saved.Code))
	return saved, nil
}

func (s *inventoryService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *inventoryService) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx, limit, offset)
}

func (s *inventoryService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if req.Label != nil {
		product.Label = *req.Label
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.Int64("product_id", productID))
		return nil, err
	}
	return product, nil
}

func (s *inventoryService) CreateArticle(ctx context.Context, req dto.CreateArticleRequest) (*domain.Article, error) {
	if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
		return nil, badReference(err, "unknown product %d", req.ProductID)
	}
	saved, err := s.productRepo.SaveArticle(ctx, domain.Article{ProductID: req.ProductID})
	if err != nil {
		s.LogError(ctx, err, "Failed to create article", slog.Int64("product_id", req.ProductID))
		return nil, err
	}
	s.LogInfo(ctx, "Article created", slog.Int64("article_id", saved.ArticleID), slog.Int64("product_id", saved.ProductID))
	return saved, nil
}

func (s *inventoryService) GetArticleByID(ctx context.Context, articleID int64) (*domain.Article, error) {
	return s.productRepo.FindArticleByID(ctx, articleID)
}

func (s *inventoryService) ListArticles(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	return s.productRepo.ListArticles(ctx, limit, offset)
}

func (s *inventoryService) CreateLocation(ctx context.Context, req dto.CreateStockLocationRequest) (*domain.StockLocation, error) {
	location := domain.StockLocation{Label: req.Label, Address: req.Address}
	saved, err := s.stockRepo.SaveLocation(ctx, location)
	if err != nil {
		s.LogError(ctx, err, "Failed to create stock location", slog.String("label", req.Label))
		return nil, err
	}
	s.LogInfo(ctx, "Stock location created", slog.Int64("location_id", saved.LocationID))
	return saved, nil
}

func (s *inventoryService) GetLocationByID(ctx context.Context, locationID int64) (*domain.StockLocation, error) {
	return s.stockRepo.FindLocationByID(ctx, locationID)
}

func (s *inventoryService) ListLocations(ctx context.Context, limit, offset int) ([]domain.StockLocation, error) {
	return s.stockRepo.ListLocations(ctx, limit, offset)
}

// PostMove validates and appends one stock move. At least one side must be
// set, both sides must exist when set and be distinct, the article must
// exist, and the quantity must be positive. Negative stock is not prevented;
// like the financial ledger, the journal records what happened.
func (s *inventoryService) PostMove(ctx context.Context, req dto.CreateStockMoveRequest, userID string) (*domain.StockMove, error) {
	if !req.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.SourceLocationID == nil && req.DestLocationID == nil {
		return nil, fmt.Errorf("%w: a move needs a source or a destination", apperrors.ErrValidation)
	}
	if req.SourceLocationID != nil && req.DestLocationID != nil && *req.SourceLocationID == *req.DestLocationID {
		return nil, fmt.Errorf("%w: source and destination must differ", apperrors.ErrValidation)
	}
	if _, err := s.productRepo.FindArticleByID(ctx, req.ArticleID); err != nil {
		return nil, badReference(err, "unknown article %d", req.ArticleID)
	}
	if req.SourceLocationID != nil {
		if _, err := s.stockRepo.FindLocationByID(ctx, *req.SourceLocationID); err != nil {
			return nil, badReference(err, "unknown source location %d", *req.SourceLocationID)
		}
	}
	if req.DestLocationID != nil {
		if _, err := s.stockRepo.FindLocationByID(ctx, *req.DestLocationID); err != nil {
			return nil, badReference(err, "unknown destination location %d", *req.DestLocationID)
		}
	}
	if req.CurrencyCode != "" {
		if _, err := s.referenceRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
			return nil, badReference(err, "unknown currency %q", req.CurrencyCode)
		}
	}

	move := domain.StockMove{
		ArticleID:        req.ArticleID,
		SourceLocationID: req.SourceLocationID,
		DestLocationID:   req.DestLocationID,
		Quantity:         req.Quantity,
		UnitCost:         req.UnitCost,
		CurrencyCode:     req.CurrencyCode,
		MoveDate:         time.Now().UTC(),
		Reference:        req.Reference,
		CreatedBy:        userID,
	}
	saved, err := s.stockRepo.SaveMove(ctx, move)
	if err != nil {
		s.LogError(ctx, err, "Failed to post stock move", slog.Int64("article_id", req.ArticleID))
		return nil, err
	}
	s.LogInfo(ctx, "Stock move posted",
		slog.Int64("move_id", saved.MoveID),
		slog.Int64("article_id", saved.ArticleID),
		slog.String("quantity", saved.Quantity.String()))
	return saved, nil
}

func (s *inventoryService) GetMoveByID(ctx context.Context, moveID int64) (*domain.StockMove, error) {
	return s.stockRepo.FindMoveByID(ctx, moveID)
}

func (s *inventoryService) ListMoves(ctx context.Context, articleID, locationID *int64, limit, offset int) ([]domain.StockMove, error) {
	filter := portsrepo.StockMoveFilter{
		ArticleID:  articleID,
		LocationID: locationID,
		Limit:      limit,
		Offset:     offset,
	}
	return s.stockRepo.ListMoves(ctx, filter)
}

// LocationInventory derives current on-hand quantities from the move journal.
func (s *inventoryService) LocationInventory(ctx context.Context, locationID int64) ([]domain.InventoryRow, error) {
	if _, err := s.stockRepo.FindLocationByID(ctx, locationID); err != nil {
		return nil, err
	}
	return s.stockRepo.LocationInventory(ctx, locationID)
}

// ArticleHistory replays one article's moves at one location oldest first,
// tagging each IN or OUT from the location's perspective with the running
// on-hand quantity after it.
func (s *inventoryService) ArticleHistory(ctx context.Context, locationID, articleID int64) ([]domain.ArticleMovement, error) {
	if _, err := s.stockRepo.FindLocationByID(ctx, locationID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindArticleByID(ctx, articleID); err != nil {
		return nil, err
	}
	moves, err := s.stockRepo.ListMovesForArticleAt(ctx, locationID, articleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list article moves", slog.Int64("article_id", articleID))
		return nil, err
	}

	entries := make([]flow.Entry[int64], len(moves))
	for i, move := range moves {
		entries[i] = flow.Entry[int64]{
			From: move.SourceLocationID,
			To:   move.DestLocationID,
			Qty:  move.Quantity,
		}
	}
	running := flow.Running(locationID, decimal.Zero, entries)

	history := make([]domain.ArticleMovement, len(moves))
	for i, move := range moves {
		direction, _ := flow.DirectionOf(locationID, entries[i])
		history[i] = domain.ArticleMovement{
			MoveID:     move.MoveID,
			MoveDate:   move.MoveDate,
			Direction:  direction,
			Quantity:   move.Quantity,
			RunningQty: running[i],
			Reference:  move.Reference,
		}
	}
	return history, nil
}
