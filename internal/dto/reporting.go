package dto

import (
	"github.com/shopspring/decimal"

	"github.com/protecfeu/erp_backend/internal/core/domain"
)

// TrialBalanceRowResponse is one account's balance in major units.
type TrialBalanceRowResponse struct {
	AccountID   int64           `json:"accountID"`
	Label       string          `json:"label"`
	AccountType string          `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
}

// ProfitAndLossResponse is the simplified income statement in major units.
type ProfitAndLossResponse struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	CurrencyCode  string          `json:"currencyCode"`
}

// ToTrialBalanceResponses converts trial balance rows to major units.
func ToTrialBalanceResponses(rows []domain.TrialBalanceRow) []TrialBalanceRowResponse {
	responses := make([]TrialBalanceRowResponse, len(rows))
	for i, row := range rows {
		responses[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			Label:       row.Label,
			AccountType: string(row.AccountType),
			Balance:     MinorToMajor(row.BalanceMinor),
		}
	}
	return responses
}

// ToProfitAndLossResponse converts a P&L report to major units.
func ToProfitAndLossResponse(report *domain.ProfitAndLoss) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		TotalIncome:   MinorToMajor(report.TotalIncomeMinor),
		TotalExpenses: MinorToMajor(report.TotalExpensesMinor),
		NetProfit:     MinorToMajor(report.NetProfitMinor),
		CurrencyCode:  report.CurrencyCode,
	}
}
