package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalogue reference (e.g. an extinguisher model).
type Product struct {
	ProductID   int64  `json:"productID"`
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Article is a stock-keeping unit of a product.
type Article struct {
	ArticleID int64 `json:"articleID"`
	ProductID int64 `json:"productID"`
}

// StockLocation is a warehouse or depot.
type StockLocation struct {
	LocationID int64  `json:"locationID"`
	Label      string `json:"label"`
	Address    string `json:"address,omitempty"`
}

// StockMove is one double-entry inventory transfer. A nil source means an
// external inflow (purchase receipt), a nil destination an external outflow
// (consumption, delivery to client); at least one side must be set.
// Moves are append-only, like ledger lines.
type StockMove struct {
	MoveID           int64            `json:"moveID"`
	ArticleID        int64            `json:"articleID"`
	SourceLocationID *int64           `json:"sourceLocationID,omitempty"`
	DestLocationID   *int64           `json:"destLocationID,omitempty"`
	Quantity         decimal.Decimal  `json:"quantity"`
	UnitCost         *decimal.Decimal `json:"unitCost,omitempty"`
	CurrencyCode     string           `json:"currencyCode,omitempty"`
	MoveDate         time.Time        `json:"moveDate"`
	Reference        string           `json:"reference,omitempty"`
	CreatedBy        string           `json:"createdBy"`
}

// InventoryRow is the derived on-hand quantity of one article at one location:
// sum(qty moved in) - sum(qty moved out). Only rows with a positive quantity
// are reported.
type InventoryRow struct {
	LocationID   int64           `json:"locationID"`
	ArticleID    int64           `json:"articleID"`
	QtyAvailable decimal.Decimal `json:"qtyAvailable"`
}

// ArticleMovement is one stock move viewed from a single location's
// perspective, with the running on-hand quantity after the move.
type ArticleMovement struct {
	MoveID     int64           `json:"moveID"`
	MoveDate   time.Time       `json:"moveDate"`
	Direction  EntryDirection  `json:"direction"`
	Quantity   decimal.Decimal `json:"quantity"`
	RunningQty decimal.Decimal `json:"runningQty"`
	Reference  string          `json:"reference,omitempty"`
}
