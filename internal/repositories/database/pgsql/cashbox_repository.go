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

type PgxCashBoxRepository struct {
	BaseRepository
}

func newPgxCashBoxRepository(db Querier) portsrepo.CashBoxRepository {
	return &PgxCashBoxRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.CashBoxRepository = (*PgxCashBoxRepository)(nil)

// SaveCashBox creates the backing ledger account and the box binding in one
// transaction so a box never exists without its account.
func (r *PgxCashBoxRepository) SaveCashBox(ctx context.Context, box domain.ProjectCashBox, backing domain.Account) (*domain.ProjectCashBox, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	insertAccount := `
		INSERT INTO accounts (label, account_type)
		VALUES ($1, $2)
		RETURNING account_id;
	`
	if err := tx.QueryRow(ctx, insertAccount, backing.Label, backing.AccountType).Scan(&box.AccountID); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: account with label %q already exists", apperrors.ErrDuplicate, backing.Label)
		}
		return nil, apperrors.NewAppError(500, "failed to create cash box backing account", err)
	}

	insertBox := `
		INSERT INTO project_cash_boxes (project_id, account_id, manager)
		VALUES ($1, $2, $3)
		RETURNING cash_box_id;
	`
	if err := tx.QueryRow(ctx, insertBox, box.ProjectID, box.AccountID, box.Manager).Scan(&box.CashBoxID); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: project %d already has a cash box", apperrors.ErrDuplicate, box.ProjectID)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: project %d", apperrors.ErrNotFound, box.ProjectID)
		}
		return nil, apperrors.NewAppError(500, "failed to create cash box", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperrors.NewAppError(500, "failed to commit cash box creation", err)
	}
	return &box, nil
}

// FindCashBoxByProjectID retrieves the cash box bound to projectID, or
// apperrors.ErrNotFound.
func (r *PgxCashBoxRepository) FindCashBoxByProjectID(ctx context.Context, projectID int64) (*domain.ProjectCashBox, error) {
	query := `
		SELECT cash_box_id, project_id, account_id, manager
		FROM project_cash_boxes
		WHERE project_id = $1;
	`
	var box domain.ProjectCashBox
	err := r.DB.QueryRow(ctx, query, projectID).Scan(&box.CashBoxID, &box.ProjectID, &box.AccountID, &box.Manager)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: cash box for project %d", apperrors.ErrNotFound, projectID)
		}
		return nil, fmt.Errorf("failed to find cash box for project %d: %w", projectID, err)
	}
	return &box, nil
}
