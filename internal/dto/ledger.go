package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/protecfeu/erp_backend/internal/core/domain"
)

// CreateLedgerLineRequest defines the payload for posting one double-entry
// ledger line. Amounts are integer minor currency units.
type CreateLedgerLineRequest struct {
	DebitAccountID  int64            `json:"debitAccountID" binding:"required"`
	CreditAccountID int64            `json:"creditAccountID" binding:"required"`
	AmountMinor     int64            `json:"amountMinor" binding:"required,gt=0"`
	CurrencyCode    string           `json:"currencyCode" binding:"required,len=3"`
	FxRate          *decimal.Decimal `json:"fxRate,omitempty"`
	CategoryID      *int64           `json:"categoryID,omitempty"`
	Memo            string           `json:"memo,omitempty"`
}

// LedgerLineResponse defines the data returned for a ledger line. Amount is
// reported both in minor units and converted to major units.
type LedgerLineResponse struct {
	LineID          int64            `json:"lineID"`
	DebitAccountID  int64            `json:"debitAccountID"`
	CreditAccountID int64            `json:"creditAccountID"`
	AmountMinor     int64            `json:"amountMinor"`
	Amount          decimal.Decimal  `json:"amount"`
	CurrencyCode    string           `json:"currencyCode"`
	FxRate          *decimal.Decimal `json:"fxRate,omitempty"`
	OperationDate   time.Time        `json:"operationDate"`
	CategoryID      *int64           `json:"categoryID,omitempty"`
	Memo            string           `json:"memo,omitempty"`
}

// MinorToMajor converts integer minor units to a major-unit decimal.
// This is the only place minor amounts leave integer arithmetic.
func MinorToMajor(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// ToLedgerLineResponse converts a domain.LedgerLine to its response DTO.
func ToLedgerLineResponse(l *domain.LedgerLine) LedgerLineResponse {
	return LedgerLineResponse{
		LineID:          l.LineID,
		DebitAccountID:  l.DebitAccountID,
		CreditAccountID: l.CreditAccountID,
		AmountMinor:     l.AmountMinor,
		Amount:          MinorToMajor(l.AmountMinor),
		CurrencyCode:    l.CurrencyCode,
		FxRate:          l.FxRate,
		OperationDate:   l.OperationDate,
		CategoryID:      l.CategoryID,
		Memo:            l.Memo,
	}
}

// ToLedgerLineResponses converts a slice of domain ledger lines.
func ToLedgerLineResponses(lines []domain.LedgerLine) []LedgerLineResponse {
	responses := make([]LedgerLineResponse, len(lines))
	for i := range lines {
		responses[i] = ToLedgerLineResponse(&lines[i])
	}
	return responses
}
