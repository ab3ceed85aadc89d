package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
	"github.com/protecfeu/erp_backend/internal/models"
	"github.com/protecfeu/erp_backend/internal/utils/mapping"
)

type PgxStockRepository struct {
	BaseRepository
}

func newPgxStockRepository(db Querier) portsrepo.StockRepository {
	return &PgxStockRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.StockRepository = (*PgxStockRepository)(nil)

const stockMoveColumns = `move_id, article_id, source_location_id, dest_location_id, quantity, unit_cost, currency_code, move_date, reference, created_by`

func (r *PgxStockRepository) SaveLocation(ctx context.Context, location domain.StockLocation) (*domain.StockLocation, error) {
	query := `
		INSERT INTO stock_locations (label, address)
		VALUES ($1, $2)
		RETURNING location_id;
	`
	err := r.DB.QueryRow(ctx, query, location.Label, location.Address).Scan(&location.LocationID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: stock location with label %q already exists", apperrors.ErrDuplicate, location.Label)
		}
		return nil, apperrors.NewAppError(500, "failed to save stock location", err)
	}
	return &location, nil
}

func (r *PgxStockRepository) FindLocationByID(ctx context.Context, locationID int64) (*domain.StockLocation, error) {
	query := `SELECT location_id, label, address FROM stock_locations WHERE location_id = $1;`
	var location domain.StockLocation
	err := r.DB.QueryRow(ctx, query, locationID).Scan(&location.LocationID, &location.Label, &location.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: stock location %d", apperrors.ErrNotFound, locationID)
		}
		return nil, fmt.Errorf("failed to find stock location %d: %w", locationID, err)
	}
	return &location, nil
}

func (r *PgxStockRepository) ListLocations(ctx context.Context, limit, offset int) ([]domain.StockLocation, error) {
	query := `
		SELECT location_id, label, address
		FROM stock_locations
		ORDER BY label
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock locations: %w", err)
	}
	defer rows.Close()

	locations := []domain.StockLocation{}
	for rows.Next() {
		var location domain.StockLocation
		if err := rows.Scan(&location.LocationID, &location.Label, &location.Address); err != nil {
			return nil, fmt.Errorf("failed to scan stock location row: %w", err)
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock location rows: %w", err)
	}
	return locations, nil
}

// SaveMove appends one move to the journal. Like ledger lines, moves are
// never updated or deleted.
func (r *PgxStockRepository) SaveMove(ctx context.Context, move domain.StockMove) (*domain.StockMove, error) {
	m := mapping.ToModelStockMove(move)
	query := `
		INSERT INTO stock_moves (article_id, source_location_id, dest_location_id, quantity, unit_cost, currency_code, move_date, reference, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING move_id;
	`
	err := r.DB.QueryRow(ctx, query,
		m.ArticleID,
		m.SourceLocationID,
		m.DestLocationID,
		m.Quantity,
		m.UnitCost,
		m.CurrencyCode,
		m.MoveDate,
		m.Reference,
		m.CreatedBy,
	).Scan(&move.MoveID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: stock move references a missing row", apperrors.ErrValidation)
		}
		return nil, apperrors.NewAppError(500, "failed to save stock move", err)
	}
	return &move, nil
}

func (r *PgxStockRepository) FindMoveByID(ctx context.Context, moveID int64) (*domain.StockMove, error) {
	query := `SELECT ` + stockMoveColumns + ` FROM stock_moves WHERE move_id = $1;`
	var m models.StockMove
	err := r.DB.QueryRow(ctx, query, moveID).Scan(
		&m.MoveID,
		&m.ArticleID,
		&m.SourceLocationID,
		&m.DestLocationID,
		&m.Quantity,
		&m.UnitCost,
		&m.CurrencyCode,
		&m.MoveDate,
		&m.Reference,
		&m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: stock move %d", apperrors.ErrNotFound, moveID)
		}
		return nil, fmt.Errorf("failed to find stock move %d: %w", moveID, err)
	}
	move := mapping.ToDomainStockMove(m)
	return &move, nil
}

// ListMoves returns moves newest first, filtered by article and/or location.
func (r *PgxStockRepository) ListMoves(ctx context.Context, filter portsrepo.StockMoveFilter) ([]domain.StockMove, error) {
	conditions := []string{}
	args := []any{}
	if filter.ArticleID != nil {
		args = append(args, *filter.ArticleID)
		conditions = append(conditions, fmt.Sprintf("article_id = $%d", len(args)))
	}
	if filter.LocationID != nil {
		args = append(args, *filter.LocationID)
		conditions = append(conditions, fmt.Sprintf("(source_location_id = $%d OR dest_location_id = $%d)", len(args), len(args)))
	}
	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ") + "\n\t\t"
	}
	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT `+stockMoveColumns+`
		FROM stock_moves
		%sORDER BY move_date DESC, move_id DESC
		LIMIT $%d OFFSET $%d;
	`, where, len(args)-1, len(args))

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock moves: %w", err)
	}
	defer rows.Close()
	return collectStockMoves(rows)
}

// LocationInventory derives on-hand quantities for one location: quantity
// moved in minus quantity moved out per article, positives only.
func (r *PgxStockRepository) LocationInventory(ctx context.Context, locationID int64) ([]domain.InventoryRow, error) {
	query := `
		SELECT
			article_id,
			SUM(
				CASE
					WHEN dest_location_id = $1 THEN quantity
					WHEN source_location_id = $1 THEN -quantity
					ELSE 0
				END
			) AS qty_available
		FROM stock_moves
		WHERE dest_location_id = $1 OR source_location_id = $1
		GROUP BY article_id
		HAVING SUM(
			CASE
				WHEN dest_location_id = $1 THEN quantity
				WHEN source_location_id = $1 THEN -quantity
				ELSE 0
			END
		) > 0
		ORDER BY article_id;
	`
	rows, err := r.DB.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive inventory for location %d: %w", locationID, err)
	}
	defer rows.Close()

	inventory := []domain.InventoryRow{}
	for rows.Next() {
		row := domain.InventoryRow{LocationID: locationID}
		if err := rows.Scan(&row.ArticleID, &row.QtyAvailable); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		inventory = append(inventory, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}
	return inventory, nil
}

// ListMovesForArticleAt returns one article's moves touching one location,
// oldest first so callers can replay a running quantity.
func (r *PgxStockRepository) ListMovesForArticleAt(ctx context.Context, locationID, articleID int64) ([]domain.StockMove, error) {
	query := `
		SELECT ` + stockMoveColumns + `
		FROM stock_moves
		WHERE article_id = $2 AND (source_location_id = $1 OR dest_location_id = $1)
		ORDER BY move_date ASC, move_id ASC;
	`
	rows, err := r.DB.Query(ctx, query, locationID, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves for article %d at location %d: %w", articleID, locationID, err)
	}
	defer rows.Close()
	return collectStockMoves(rows)
}

func collectStockMoves(rows pgx.Rows) ([]domain.StockMove, error) {
	moves := []domain.StockMove{}
	for rows.Next() {
		var m models.StockMove
		err := rows.Scan(
			&m.MoveID,
			&m.ArticleID,
			&m.SourceLocationID,
			&m.DestLocationID,
			&m.Quantity,
			&m.UnitCost,
			&m.CurrencyCode,
			&m.MoveDate,
			&m.Reference,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock move row: %w", err)
		}
		moves = append(moves, mapping.ToDomainStockMove(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock move rows: %w", err)
	}
	return moves, nil
}
