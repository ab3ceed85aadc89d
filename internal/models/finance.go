package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Account mirrors the accounts table.
type Account struct {
	AccountID   int64
	Label       string
	AccountType string
}

// LedgerLine mirrors the ledger_lines table. Nullable columns use sql.Null
// wrappers so scans round-trip NULLs faithfully.
type LedgerLine struct {
	LineID          int64
	DebitAccountID  int64
	CreditAccountID int64
	AmountMinor     int64
	CurrencyCode    string
	FxRate          decimal.NullDecimal
	OperationDate   time.Time
	CategoryID      sql.NullInt64
	Memo            sql.NullString
	CreatedBy       string
}

// ProjectCashBox mirrors the project_cash_boxes table.
type ProjectCashBox struct {
	CashBoxID int64
	ProjectID int64
	AccountID int64
	Manager   sql.NullString
}
