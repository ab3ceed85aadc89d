package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is one double-entry posting: a debit/credit pair over two
// distinct accounts. Amounts are integer minor currency units (centimes);
// conversion to major units happens only at the reporting boundary.
//
// Lines are immutable once stored. Corrections are posted as new offsetting
// lines, never as updates or deletes.
type LedgerLine struct {
	LineID          int64            `json:"lineID"`
	DebitAccountID  int64            `json:"debitAccountID"`
	CreditAccountID int64            `json:"creditAccountID"`
	AmountMinor     int64            `json:"amountMinor"`
	CurrencyCode    string           `json:"currencyCode"`
	FxRate          *decimal.Decimal `json:"fxRate,omitempty"`
	OperationDate   time.Time        `json:"operationDate"`
	CategoryID      *int64           `json:"categoryID,omitempty"`
	Memo            string           `json:"memo,omitempty"`
	CreatedBy       string           `json:"createdBy"`
}

// EntryDirection tags a ledger line or stock move relative to one side's
// perspective: IN when the perspective holder is on the receiving (debit /
// destination) side, OUT when it is on the giving (credit / source) side.
type EntryDirection string

const (
	DirectionIn  EntryDirection = "IN"
	DirectionOut EntryDirection = "OUT"
)
