package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/protecfeu/erp_backend/internal/core/domain"
)

// CreateCashBoxRequest defines the payload for binding a cash box to a
// project. The backing ASSET account is created by the service.
type CreateCashBoxRequest struct {
	Manager string `json:"manager,omitempty"`
}

// CashBoxResponse defines the data returned for a project cash box.
type CashBoxResponse struct {
	CashBoxID int64  `json:"cashBoxID"`
	ProjectID int64  `json:"projectID"`
	AccountID int64  `json:"accountID"`
	Manager   string `json:"manager,omitempty"`
}

// CashTopUpRequest defines a cash box top-up. Amount is in major units and
// converted to minor units before posting. SourceAccountID overrides the
// configured funding account when set.
type CashTopUpRequest struct {
	Amount          decimal.Decimal  `json:"amount" binding:"required"`
	CurrencyCode    string           `json:"currencyCode" binding:"required,len=3"`
	FxRate          *decimal.Decimal `json:"fxRate,omitempty"`
	Memo            string           `json:"memo,omitempty"`
	SourceAccountID *int64           `json:"sourceAccountID,omitempty"`
}

// CashExpenseRequest defines an expense drawn from a cash box.
type CashExpenseRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3"`
	CategoryID   int64           `json:"categoryID" binding:"required"`
	Memo         string          `json:"memo,omitempty"`
}

// CashBalanceResponse defines the derived cash box balance.
type CashBalanceResponse struct {
	Balance      decimal.Decimal `json:"balance"`
	CurrencyCode string          `json:"currencyCode"`
	LastUpdated  *time.Time      `json:"lastUpdated,omitempty"`
}

// CashStatementEntryResponse is one line of the paginated cash statement.
type CashStatementEntryResponse struct {
	LineID        int64           `json:"lineID"`
	OperationDate time.Time       `json:"operationDate"`
	Direction     string          `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Memo          string          `json:"memo,omitempty"`
	Category      string          `json:"category,omitempty"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
}

// ToCashBoxResponse converts a domain cash box to its response DTO.
func ToCashBoxResponse(b *domain.ProjectCashBox) CashBoxResponse {
	return CashBoxResponse{
		CashBoxID: b.CashBoxID,
		ProjectID: b.ProjectID,
		AccountID: b.AccountID,
		Manager:   b.Manager,
	}
}

// ToCashBalanceResponse converts a derived balance to major units.
func ToCashBalanceResponse(b *domain.CashBoxBalance) CashBalanceResponse {
	return CashBalanceResponse{
		Balance:      MinorToMajor(b.BalanceMinor),
		CurrencyCode: b.CurrencyCode,
		LastUpdated:  b.LastOperation,
	}
}

// ToCashStatementResponses converts statement entries to major units.
func ToCashStatementResponses(entries []domain.CashStatementEntry) []CashStatementEntryResponse {
	responses := make([]CashStatementEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = CashStatementEntryResponse{
			LineID:        e.LineID,
			OperationDate: e.OperationDate,
			Direction:     string(e.Direction),
			Amount:        MinorToMajor(e.AmountMinor),
			CurrencyCode:  e.CurrencyCode,
			Memo:          e.Memo,
			Category:      e.CategoryLabel,
			BalanceAfter:  MinorToMajor(e.BalanceAfterMinor),
		}
	}
	return responses
}
