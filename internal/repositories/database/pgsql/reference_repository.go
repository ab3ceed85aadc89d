package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
	"github.com/protecfeu/erp_backend/internal/utils/mapping"
)

type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(db Querier) portsrepo.ReferenceRepository {
	return &PgxReferenceRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ReferenceRepository = (*PgxReferenceRepository)(nil)

// SaveCurrency upserts a currency row, codes being natural keys.
func (r *PgxReferenceRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	query := `
		INSERT INTO currencies (code, label)
		VALUES ($1, $2)
		ON CONFLICT (code) DO UPDATE SET label = EXCLUDED.label;
	`
	if _, err := r.DB.Exec(ctx, query, currency.Code, currency.Label); err != nil {
		return apperrors.NewAppError(500, "failed to save currency", err)
	}
	return nil
}

func (r *PgxReferenceRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `SELECT code, label FROM currencies WHERE code = $1;`
	var currency domain.Currency
	err := r.DB.QueryRow(ctx, query, code).Scan(&currency.Code, &currency.Label)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: currency %q", apperrors.ErrNotFound, code)
		}
		return nil, fmt.Errorf("failed to find currency %q: %w", code, err)
	}
	return &currency, nil
}

func (r *PgxReferenceRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT code, label FROM currencies ORDER BY code;`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	defer rows.Close()

	currencies := []domain.Currency{}
	for rows.Next() {
		var currency domain.Currency
		if err := rows.Scan(&currency.Code, &currency.Label); err != nil {
			return nil, fmt.Errorf("failed to scan currency row: %w", err)
		}
		currencies = append(currencies, currency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currency rows: %w", err)
	}
	return currencies, nil
}

func (r *PgxReferenceRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) (*domain.ExpenseCategory, error) {
	query := `
		INSERT INTO expense_categories (label, account_id)
		VALUES ($1, $2)
		RETURNING category_id;
	`
	err := r.DB.QueryRow(ctx, query, category.Label, mapping.NullInt64(category.AccountID)).Scan(&category.CategoryID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: expense category %q already exists", apperrors.ErrDuplicate, category.Label)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: account %v", apperrors.ErrNotFound, category.AccountID)
		}
		return nil, apperrors.NewAppError(500, "failed to save expense category", err)
	}
	return &category, nil
}

func (r *PgxReferenceRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.ExpenseCategory, error) {
	query := `SELECT category_id, label, account_id FROM expense_categories WHERE category_id = $1;`
	var category domain.ExpenseCategory
	err := r.DB.QueryRow(ctx, query, categoryID).Scan(&category.CategoryID, &category.Label, &category.AccountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: expense category %d", apperrors.ErrNotFound, categoryID)
		}
		return nil, fmt.Errorf("failed to find expense category %d: %w", categoryID, err)
	}
	return &category, nil
}

func (r *PgxReferenceRepository) ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	query := `SELECT category_id, label, account_id FROM expense_categories ORDER BY label;`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.ExpenseCategory{}
	for rows.Next() {
		var category domain.ExpenseCategory
		if err := rows.Scan(&category.CategoryID, &category.Label, &category.AccountID); err != nil {
			return nil, fmt.Errorf("failed to scan expense category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense category rows: %w", err)
	}
	return categories, nil
}

func (r *PgxReferenceRepository) SaveDeliveryStatus(ctx context.Context, status domain.DeliveryStatus) (*domain.DeliveryStatus, error) {
	query := `
		INSERT INTO delivery_statuses (label)
		VALUES ($1)
		RETURNING status_id;
	`
	err := r.DB.QueryRow(ctx, query, status.Label).Scan(&status.StatusID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: delivery status %q already exists", apperrors.ErrDuplicate, status.Label)
		}
		return nil, apperrors.NewAppError(500, "failed to save delivery status", err)
	}
	return &status, nil
}

func (r *PgxReferenceRepository) FindDeliveryStatusByID(ctx context.Context, statusID int64) (*domain.DeliveryStatus, error) {
	query := `SELECT status_id, label FROM delivery_statuses WHERE status_id = $1;`
	var status domain.DeliveryStatus
	err := r.DB.QueryRow(ctx, query, statusID).Scan(&status.StatusID, &status.Label)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: delivery status %d", apperrors.ErrNotFound, statusID)
		}
		return nil, fmt.Errorf("failed to find delivery status %d: %w", statusID, err)
	}
	return &status, nil
}

func (r *PgxReferenceRepository) ListDeliveryStatuses(ctx context.Context) ([]domain.DeliveryStatus, error) {
	query := `SELECT status_id, label FROM delivery_statuses ORDER BY status_id;`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery statuses: %w", err)
	}
	defer rows.Close()

	statuses := []domain.DeliveryStatus{}
	for rows.Next() {
		var status domain.DeliveryStatus
		if err := rows.Scan(&status.StatusID, &status.Label); err != nil {
			return nil, fmt.Errorf("failed to scan delivery status row: %w", err)
		}
		statuses = append(statuses, status)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating delivery status rows: %w", err)
	}
	return statuses, nil
}
