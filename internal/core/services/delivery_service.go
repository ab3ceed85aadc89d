package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/protecfeu/erp_backend/internal/core/domain"
	portsrepo "github.com/protecfeu/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/dto"
)

type deliveryService struct {
	BaseService
	deliveryRepo  portsrepo.DeliveryRepository
	stockRepo     portsrepo.StockRepository
	referenceRepo portsrepo.ReferenceRepository
}

// NewDeliveryService creates the delivery service.
func NewDeliveryService(deliveryRepo portsrepo.DeliveryRepository, stockRepo portsrepo.StockRepository, referenceRepo portsrepo.ReferenceRepository) portssvc.DeliveryService {
	return &deliveryService{
		deliveryRepo:  deliveryRepo,
		stockRepo:     stockRepo,
		referenceRepo: referenceRepo,
	}
}

var _ portssvc.DeliveryService = (*deliveryService)(nil)

func (s *deliveryService) CreateDelivery(ctx context.Context, req dto.CreateDeliveryRequest, userID string) (*domain.Delivery, error) {
	if req.OutboundMoveID != nil {
		if _, err := s.stockRepo.FindMoveByID(ctx, *req.OutboundMoveID); err != nil {
			return nil, badReference(err, "unknown outbound move %d", *req.OutboundMoveID)
		}
	}
	if req.InboundMoveID != nil {
		if _, err := s.stockRepo.FindMoveByID(ctx, *req.InboundMoveID); err != nil {
			return nil, badReference(err, "unknown inbound move %d", *req.InboundMoveID)
		}
	}
	if _, err := s.referenceRepo.FindDeliveryStatusByID(ctx, req.StatusID); err != nil {
		return nil, badReference(err, "unknown delivery status %d", req.StatusID)
	}

	delivery := domain.Delivery{
		OutboundMoveID: req.OutboundMoveID,
		InboundMoveID:  req.InboundMoveID,
		DeliveryDate:   time.Now().UTC(),
		StatusID:       req.StatusID,
		Driver:         req.Driver,
	}
	saved, err := s.deliveryRepo.SaveDelivery(ctx, delivery)
	if err != nil {
		s.LogError(ctx, err, "Failed to create delivery")
		return nil, err
	}
	s.LogInfo(ctx, "Delivery created",
		slog.Int64("delivery_id", saved.DeliveryID),
		slog.String("created_by", userID))
	return saved, nil
}

func (s *deliveryService) GetDeliveryByID(ctx context.Context, deliveryID int64) (*domain.Delivery, error) {
	return s.deliveryRepo.FindDeliveryByID(ctx, deliveryID)
}

func (s *deliveryService) ListDeliveries(ctx context.Context, limit, offset int) ([]domain.Delivery, error) {
	return s.deliveryRepo.ListDeliveries(ctx, limit, offset)
}

// UpdateDeliveryStatus overwrites the status after checking both the
// delivery and the target status exist. Any status may follow any other.
func (s *deliveryService) UpdateDeliveryStatus(ctx context.Context, deliveryID int64, req dto.UpdateDeliveryStatusRequest) error {
	if _, err := s.deliveryRepo.FindDeliveryByID(ctx, deliveryID); err != nil {
		return err
	}
	if _, err := s.referenceRepo.FindDeliveryStatusByID(ctx, req.StatusID); err != nil {
		return badReference(err, "unknown delivery status %d", req.StatusID)
	}
	if err := s.deliveryRepo.UpdateDeliveryStatus(ctx, deliveryID, req.StatusID); err != nil {
		s.LogError(ctx, err, "Failed to update delivery status", slog.Int64("delivery_id", deliveryID))
		return err
	}
	s.LogInfo(ctx, "Delivery status updated",
		slog.Int64("delivery_id", deliveryID),
		slog.Int64("status_id", req.StatusID))
	return nil
}
