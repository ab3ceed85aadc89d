package models

import (
	"database/sql"
	"time"
)

// Delivery mirrors the deliveries table.
type Delivery struct {
	DeliveryID     int64
	OutboundMoveID sql.NullInt64
	InboundMoveID  sql.NullInt64
	DeliveryDate   time.Time
	StatusID       int64
	Driver         sql.NullString
}
