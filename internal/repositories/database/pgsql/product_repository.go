package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(db Querier) portsrepo.ProductRepository {
	return &PgxProductRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (code, label, description)
		VALUES ($1, $2, $3)
		RETURNING product_id;
	`
	err := r.DB.QueryRow(ctx, query, product.Code, product.Label, product.Description).Scan(&product.ProductID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: product with code %q already exists", apperrors.ErrDuplicate, product.Code)
		}
		return nil, apperrors.NewAppError(500, "failed to save product", err)
	}
	return &product, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `SELECT product_id, code, label, description FROM products WHERE product_id = $1;`
	var product domain.Product
	err := r.DB.QueryRow(ctx, query, productID).Scan(&product.ProductID, &product.Code, &product.Label, &product.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %d", apperrors.ErrNotFound, productID)
		}
		return nil, fmt.Errorf("failed to find product %d: %w", productID, err)
	}
	return &product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	query := `
		SELECT product_id, code, label, description
		FROM products
		ORDER BY code
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ProductID, &product.Code, &product.Label, &product.Description); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET code = $2, label = $3, description = $4
		WHERE product_id = $1;
	`
	tag, err := r.DB.Exec(ctx, query, product.ProductID, product.Code, product.Label, product.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product with code %q already exists", apperrors.ErrDuplicate, product.Code)
		}
		return apperrors.NewAppError(500, "failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %d", apperrors.ErrNotFound, product.ProductID)
	}
	return nil
}

func (r *PgxProductRepository) SaveArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	query := `
		INSERT INTO articles (product_id)
		VALUES ($1)
		RETURNING article_id;
	`
	err := r.DB.QueryRow(ctx, query, article.ProductID).Scan(&article.ArticleID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: product %d", apperrors.ErrNotFound, article.ProductID)
		}
		return nil, apperrors.NewAppError(500, "failed to save article", err)
	}
	return &article, nil
}

func (r *PgxProductRepository) FindArticleByID(ctx context.Context, articleID int64) (*domain.Article, error) {
	query := `SELECT article_id, product_id FROM articles WHERE article_id = $1;`
	var article domain.Article
	err := r.DB.QueryRow(ctx, query, articleID).Scan(&article.ArticleID, &article.ProductID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: article %d", apperrors.ErrNotFound, articleID)
		}
		return nil, fmt.Errorf("failed to find article %d: %w", articleID, err)
	}
	return &article, nil
}

func (r *PgxProductRepository) ListArticles(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	query := `
		SELECT article_id, product_id
		FROM articles
		ORDER BY article_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		var article domain.Article
		if err := rows.Scan(&article.ArticleID, &article.ProductID); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}
	return articles, nil
}
