package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// StockMove mirrors the stock_moves table.
type StockMove struct {
	MoveID           int64
	ArticleID        int64
	SourceLocationID sql.NullInt64
	DestLocationID   sql.NullInt64
	Quantity         decimal.Decimal
	UnitCost         decimal.NullDecimal
	CurrencyCode     sql.NullString
	MoveDate         time.Time
	Reference        sql.NullString
	CreatedBy        string
}
