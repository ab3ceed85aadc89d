package domain

import "time"

// Delivery wraps an outbound and/or inbound stock move plus a status and a
// driver. The status is a plain foreign key updated by overwrite; there is no
// guarded transition graph.
type Delivery struct {
	DeliveryID     int64     `json:"deliveryID"`
	OutboundMoveID *int64    `json:"outboundMoveID,omitempty"`
	InboundMoveID  *int64    `json:"inboundMoveID,omitempty"`
	DeliveryDate   time.Time `json:"deliveryDate"`
	StatusID       int64     `json:"statusID"`
	Driver         string    `json:"driver,omitempty"`
}
