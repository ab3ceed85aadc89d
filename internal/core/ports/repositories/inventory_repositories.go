package repositories

import (
	"context"

	"github.com/protecfeu/erp_backend/internal/core/domain"
)

// ProductRepository persists the product catalogue and its articles.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	SaveArticle(ctx context.Context, article domain.Article) (*domain.Article, error)
	FindArticleByID(ctx context.Context, articleID int64) (*domain.Article, error)
	ListArticles(ctx context.Context, limit, offset int) ([]domain.Article, error)
}

// StockMoveFilter narrows ListMoves; nil fields match everything.
type StockMoveFilter struct {
	ArticleID  *int64
	LocationID *int64
	Limit      int
	Offset     int
}

// StockRepository persists stock locations and the append-only move journal,
// and derives inventory by aggregation.
type StockRepository interface {
	SaveLocation(ctx context.Context, location domain.StockLocation) (*domain.StockLocation, error)
	FindLocationByID(ctx context.Context, locationID int64) (*domain.StockLocation, error)
	ListLocations(ctx context.Context, limit, offset int) ([]domain.StockLocation, error)
	SaveMove(ctx context.Context, move domain.StockMove) (*domain.StockMove, error)
	FindMoveByID(ctx context.Context, moveID int64) (*domain.StockMove, error)
	ListMoves(ctx context.Context, filter StockMoveFilter) ([]domain.StockMove, error)
	// LocationInventory derives qty in minus qty out per article for one
	// location, keeping only positive quantities.
	LocationInventory(ctx context.Context, locationID int64) ([]domain.InventoryRow, error)
	// ListMovesForArticleAt returns every move of one article touching one
	// location, oldest first, for running-quantity statements.
	ListMovesForArticleAt(ctx context.Context, locationID, articleID int64) ([]domain.StockMove, error)
}
