package dto

import (
	"time"

	"github.com/protecfeu/erp_backend/internal/core/domain"
)

// CreateDeliveryRequest defines the payload for creating a delivery wrapping
// optional outbound/inbound stock moves.
type CreateDeliveryRequest struct {
	OutboundMoveID *int64 `json:"outboundMoveID,omitempty"`
	InboundMoveID  *int64 `json:"inboundMoveID,omitempty"`
	StatusID       int64  `json:"statusID" binding:"required"`
	Driver         string `json:"driver,omitempty"`
}

// UpdateDeliveryStatusRequest overwrites a delivery's status pointer.
type UpdateDeliveryStatusRequest struct {
	StatusID int64 `json:"statusID" binding:"required"`
}

// DeliveryResponse defines the data returned for a delivery.
type DeliveryResponse struct {
	DeliveryID     int64     `json:"deliveryID"`
	OutboundMoveID *int64    `json:"outboundMoveID,omitempty"`
	InboundMoveID  *int64    `json:"inboundMoveID,omitempty"`
	DeliveryDate   time.Time `json:"deliveryDate"`
	StatusID       int64     `json:"statusID"`
	Driver         string    `json:"driver,omitempty"`
}

// ToDeliveryResponse converts a domain delivery.
func ToDeliveryResponse(d *domain.Delivery) DeliveryResponse {
	return DeliveryResponse{
		DeliveryID:     d.DeliveryID,
		OutboundMoveID: d.OutboundMoveID,
		InboundMoveID:  d.InboundMoveID,
		DeliveryDate:   d.DeliveryDate,
		StatusID:       d.StatusID,
		Driver:         d.Driver,
	}
}

// ToDeliveryResponses converts a slice of domain deliveries.
func ToDeliveryResponses(deliveries []domain.Delivery) []DeliveryResponse {
	responses := make([]DeliveryResponse, len(deliveries))
	for i := range deliveries {
		responses[i] = ToDeliveryResponse(&deliveries[i])
	}
	return responses
}
