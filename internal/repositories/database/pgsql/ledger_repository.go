package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
	"github.com/protecfeu/erp_backend/internal/models"
	"github.com/protecfeu/erp_backend/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the ledger line journal.
func newPgxLedgerRepository(db Querier) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

const ledgerLineColumns = `line_id, debit_account_id, credit_account_id, amount_minor, currency_code, fx_rate, operation_date, category_id, memo, created_by`

// SaveLine appends one line to the journal. The insert is a single statement;
// either the fully valid line lands or nothing does.
func (r *PgxLedgerRepository) SaveLine(ctx context.Context, line domain.LedgerLine) (*domain.LedgerLine, error) {
	m := mapping.ToModelLedgerLine(line)
	query := `
		INSERT INTO ledger_lines (debit_account_id, credit_account_id, amount_minor, currency_code, fx_rate, operation_date, category_id, memo, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING line_id;
	`
	err := r.DB.QueryRow(ctx, query,
		m.DebitAccountID,
		m.CreditAccountID,
		m.AmountMinor,
		m.CurrencyCode,
		m.FxRate,
		m.OperationDate,
		m.CategoryID,
		m.Memo,
		m.CreatedBy,
	).Scan(&line.LineID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: ledger line references a missing row", apperrors.ErrValidation)
		}
		return nil, apperrors.NewAppError(500, "failed to save ledger line", err)
	}
	return &line, nil
}

func scanLedgerLine(row pgx.Row) (*domain.LedgerLine, error) {
	var m models.LedgerLine
	err := row.Scan(
		&m.LineID,
		&m.DebitAccountID,
		&m.CreditAccountID,
		&m.AmountMinor,
		&m.CurrencyCode,
		&m.FxRate,
		&m.OperationDate,
		&m.CategoryID,
		&m.Memo,
		&m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	line := mapping.ToDomainLedgerLine(m)
	return &line, nil
}

// FindLineByID retrieves one ledger line, or apperrors.ErrNotFound.
func (r *PgxLedgerRepository) FindLineByID(ctx context.Context, lineID int64) (*domain.LedgerLine, error) {
	query := `SELECT ` + ledgerLineColumns + ` FROM ledger_lines WHERE line_id = $1;`
	line, err := scanLedgerLine(r.DB.QueryRow(ctx, query, lineID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: ledger line %d", apperrors.ErrNotFound, lineID)
		}
		return nil, fmt.Errorf("failed to find ledger line %d: %w", lineID, err)
	}
	return line, nil
}

// ListLines returns lines newest first, optionally filtered to one account
// on either side.
func (r *PgxLedgerRepository) ListLines(ctx context.Context, filter portsrepo.LedgerLineFilter) ([]domain.LedgerLine, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if filter.AccountID != nil {
		query := `
			SELECT ` + ledgerLineColumns + `
			FROM ledger_lines
			WHERE debit_account_id = $1 OR credit_account_id = $1
			ORDER BY operation_date DESC, line_id DESC
			LIMIT $2 OFFSET $3;
		`
		rows, err = r.DB.Query(ctx, query, *filter.AccountID, filter.Limit, filter.Offset)
	} else {
		query := `
			SELECT ` + ledgerLineColumns + `
			FROM ledger_lines
			ORDER BY operation_date DESC, line_id DESC
			LIMIT $1 OFFSET $2;
		`
		rows, err = r.DB.Query(ctx, query, filter.Limit, filter.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger lines: %w", err)
	}
	defer rows.Close()
	return collectLedgerLines(rows)
}

// ListLinesForAccount returns the statement page for one account plus the
// category labels of the lines in it.
func (r *PgxLedgerRepository) ListLinesForAccount(ctx context.Context, accountID int64, limit, offset int) ([]domain.LedgerLine, map[int64]string, error) {
	query := `
		SELECT ll.line_id, ll.debit_account_id, ll.credit_account_id, ll.amount_minor, ll.currency_code, ll.fx_rate, ll.operation_date, ll.category_id, ll.memo, ll.created_by, ec.label
		FROM ledger_lines ll
		LEFT JOIN expense_categories ec ON ec.category_id = ll.category_id
		WHERE ll.debit_account_id = $1 OR ll.credit_account_id = $1
		ORDER BY ll.operation_date DESC, ll.line_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.DB.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list ledger lines for account %d: %w", accountID, err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	labels := map[int64]string{}
	for rows.Next() {
		var m models.LedgerLine
		var categoryLabel *string
		err := rows.Scan(
			&m.LineID,
			&m.DebitAccountID,
			&m.CreditAccountID,
			&m.AmountMinor,
			&m.CurrencyCode,
			&m.FxRate,
			&m.OperationDate,
			&m.CategoryID,
			&m.Memo,
			&m.CreatedBy,
			&categoryLabel,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan ledger line row: %w", err)
		}
		lines = append(lines, mapping.ToDomainLedgerLine(m))
		if categoryLabel != nil {
			labels[m.LineID] = *categoryLabel
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating ledger line rows: %w", err)
	}
	return lines, labels, nil
}

// AccountActivity derives one account's debit-minus-credit balance and its
// most recent operation date by aggregating over the full line set.
func (r *PgxLedgerRepository) AccountActivity(ctx context.Context, accountID int64) (int64, *time.Time, error) {
	query := `
		SELECT
			COALESCE(SUM(
				CASE
					WHEN debit_account_id = $1 THEN amount_minor
					WHEN credit_account_id = $1 THEN -amount_minor
					ELSE 0
				END
			), 0) AS balance_minor,
			MAX(operation_date) AS last_operation
		FROM ledger_lines
		WHERE debit_account_id = $1 OR credit_account_id = $1;
	`
	var balanceMinor int64
	var lastOperation *time.Time
	if err := r.DB.QueryRow(ctx, query, accountID).Scan(&balanceMinor, &lastOperation); err != nil {
		return 0, nil, fmt.Errorf("failed to derive activity for account %d: %w", accountID, err)
	}
	return balanceMinor, lastOperation, nil
}

// BalanceBefore derives the balance from all lines strictly older than the
// (operation_date, line_id) cursor, the opening balance of a statement page.
func (r *PgxLedgerRepository) BalanceBefore(ctx context.Context, accountID int64, before time.Time, beforeLineID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE
				WHEN debit_account_id = $1 THEN amount_minor
				WHEN credit_account_id = $1 THEN -amount_minor
				ELSE 0
			END
		), 0) AS balance_minor
		FROM ledger_lines
		WHERE (debit_account_id = $1 OR credit_account_id = $1)
			AND (operation_date < $2 OR (operation_date = $2 AND line_id < $3));
	`
	var balanceMinor int64
	if err := r.DB.QueryRow(ctx, query, accountID, before, beforeLineID).Scan(&balanceMinor); err != nil {
		return 0, fmt.Errorf("failed to derive opening balance for account %d: %w", accountID, err)
	}
	return balanceMinor, nil
}

func collectLedgerLines(rows pgx.Rows) ([]domain.LedgerLine, error) {
	lines := []domain.LedgerLine{}
	for rows.Next() {
		var m models.LedgerLine
		err := rows.Scan(
			&m.LineID,
			&m.DebitAccountID,
			&m.CreditAccountID,
			&m.AmountMinor,
			&m.CurrencyCode,
			&m.FxRate,
			&m.OperationDate,
			&m.CategoryID,
			&m.Memo,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger line row: %w", err)
		}
		lines = append(lines, mapping.ToDomainLedgerLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger line rows: %w", err)
	}
	return lines, nil
}
