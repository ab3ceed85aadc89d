package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/protecfeu/erp_backend/internal/apperrors"
	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
	"github.com/protecfeu/erp_backend/internal/models"
	"github.com/protecfeu/erp_backend/internal/utils/mapping"
)

type PgxDeliveryRepository struct {
	BaseRepository
}

func newPgxDeliveryRepository(db Querier) portsrepo.DeliveryRepository {
	return &PgxDeliveryRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.DeliveryRepository = (*PgxDeliveryRepository)(nil)

func (r *PgxDeliveryRepository) SaveDelivery(ctx context.Context, delivery domain.Delivery) (*domain.Delivery, error) {
	query := `
		INSERT INTO deliveries (outbound_move_id, inbound_move_id, delivery_date, status_id, driver)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING delivery_id;
	`
	err := r.DB.QueryRow(ctx, query,
		mapping.NullInt64(delivery.OutboundMoveID),
		mapping.NullInt64(delivery.InboundMoveID),
		delivery.DeliveryDate,
		delivery.StatusID,
		mapping.NullString(delivery.Driver),
	).Scan(&delivery.DeliveryID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: delivery references a missing row", apperrors.ErrValidation)
		}
		return nil, apperrors.NewAppError(500, "failed to save delivery", err)
	}
	return &delivery, nil
}

func (r *PgxDeliveryRepository) FindDeliveryByID(ctx context.Context, deliveryID int64) (*domain.Delivery, error) {
	query := `
		SELECT delivery_id, outbound_move_id, inbound_move_id, delivery_date, status_id, driver
		FROM deliveries
		WHERE delivery_id = $1;
	`
	var m models.Delivery
	err := r.DB.QueryRow(ctx, query, deliveryID).Scan(&m.DeliveryID, &m.OutboundMoveID, &m.InboundMoveID, &m.DeliveryDate, &m.StatusID, &m.Driver)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: delivery %d", apperrors.ErrNotFound, deliveryID)
		}
		return nil, fmt.Errorf("failed to find delivery %d: %w", deliveryID, err)
	}
	delivery := mapping.ToDomainDelivery(m)
	return &delivery, nil
}

func (r *PgxDeliveryRepository) ListDeliveries(ctx context.Context, limit, offset int) ([]domain.Delivery, error) {
	query := `
		SELECT delivery_id, outbound_move_id, inbound_move_id, delivery_date, status_id, driver
		FROM deliveries
		ORDER BY delivery_date DESC, delivery_id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	deliveries := []domain.Delivery{}
	for rows.Next() {
		var m models.Delivery
		if err := rows.Scan(&m.DeliveryID, &m.OutboundMoveID, &m.InboundMoveID, &m.DeliveryDate, &m.StatusID, &m.Driver); err != nil {
			return nil, fmt.Errorf("failed to scan delivery row: %w", err)
		}
		deliveries = append(deliveries, mapping.ToDomainDelivery(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating delivery rows: %w", err)
	}
	return deliveries, nil
}

// UpdateDeliveryStatus overwrites the status foreign key. There is no
// transition graph; any known status may replace any other.
func (r *PgxDeliveryRepository) UpdateDeliveryStatus(ctx context.Context, deliveryID, statusID int64) error {
	query := `UPDATE deliveries SET status_id = $2 WHERE delivery_id = $1;`
	tag, err := r.DB.Exec(ctx, query, deliveryID, statusID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: delivery status %d", apperrors.ErrNotFound, statusID)
		}
		return apperrors.NewAppError(500, "failed to update delivery status", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: delivery %d", apperrors.ErrNotFound, deliveryID)
	}
	return nil
}
