package domain

import "time"

// ProjectCashBox binds a project 1:1 to a dedicated ledger account used to
// scope a subset of ledger lines to that project. The account's balance is
// never stored; it is always derived from the ledger.
type ProjectCashBox struct {
	CashBoxID int64  `json:"cashBoxID"`
	ProjectID int64  `json:"projectID"`
	AccountID int64  `json:"accountID"`
	Manager   string `json:"manager,omitempty"`
}

// CashBoxBalance is the derived balance of a project cash box, in minor units,
// together with the timestamp of the most recent matching ledger line.
type CashBoxBalance struct {
	BalanceMinor  int64      `json:"balanceMinor"`
	CurrencyCode  string     `json:"currencyCode"`
	LastOperation *time.Time `json:"lastOperation,omitempty"`
}

// CashStatementEntry is one ledger line viewed from the cash box's
// perspective. Direction is inferred by comparing which side of the line
// matches the cash box account, not from the account's declared type.
// BalanceAfterMinor is a running sum computed over the ordered sequence,
// never a stored quantity.
type CashStatementEntry struct {
	LineID            int64          `json:"lineID"`
	OperationDate     time.Time      `json:"operationDate"`
	Direction         EntryDirection `json:"direction"`
	AmountMinor       int64          `json:"amountMinor"`
	CurrencyCode      string         `json:"currencyCode"`
	Memo              string         `json:"memo,omitempty"`
	CategoryLabel     string         `json:"categoryLabel,omitempty"`
	BalanceAfterMinor int64          `json:"balanceAfterMinor"`
}
