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

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for ledger accounts.
func newPgxAccountRepository(db Querier) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account and returns it with the generated id.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (label, account_type)
		VALUES ($1, $2)
		RETURNING account_id;
	`
	err := r.DB.QueryRow(ctx, query, account.Label, string(account.AccountType)).Scan(&account.AccountID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: account %q", apperrors.ErrDuplicate, account.Label)
		}
		return nil, fmt.Errorf("failed to save account %q: %w", account.Label, err)
	}
	return &account, nil
}

// FindAccountByID retrieves one account, or apperrors.ErrNotFound.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT account_id, label, account_type
		FROM accounts
		WHERE account_id = $1;
	`
	var account domain.Account
	var accountType string
	err := r.DB.QueryRow(ctx, query, accountID).Scan(&account.AccountID, &account.Label, &accountType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}
	account.AccountType = domain.AccountType(accountType)
	return &account, nil
}

// FindAccountsByIDs retrieves several accounts in one query. Missing ids are
// simply absent from the returned map; the caller decides whether that is an
// error.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}
	query := `
		SELECT account_id, label, account_type
		FROM accounts
		WHERE account_id = ANY($1);
	`
	rows, err := r.DB.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	defer rows.Close()

	accounts := make(map[int64]domain.Account, len(accountIDs))
	for rows.Next() {
		var account domain.Account
		var accountType string
		if err := rows.Scan(&account.AccountID, &account.Label, &accountType); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		account.AccountType = domain.AccountType(accountType)
		accounts[account.AccountID] = account
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// ListAccounts returns accounts ordered by type then label, matching the
// trial balance ordering.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	query := `
		SELECT account_id, label, account_type
		FROM accounts
		ORDER BY account_type, label
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var account domain.Account
		var accountType string
		if err := rows.Scan(&account.AccountID, &account.Label, &accountType); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		account.AccountType = domain.AccountType(accountType)
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}
