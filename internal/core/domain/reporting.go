package domain

// TrialBalanceRow is one account's derived net balance.
// BalanceMinor = sum(debit amounts) - sum(credit amounts), uniformly for
// every account type. The sign convention is debit-positive everywhere.
type TrialBalanceRow struct {
	AccountID    int64       `json:"accountID"`
	Label        string      `json:"label"`
	AccountType  AccountType `json:"accountType"`
	BalanceMinor int64       `json:"balanceMinor"`
}

// ProfitAndLoss is the simplified income statement: income aggregated
// credit-minus-debit over INCOME accounts, expenses debit-minus-credit over
// EXPENSE accounts.
type ProfitAndLoss struct {
	TotalIncomeMinor   int64  `json:"totalIncomeMinor"`
	TotalExpensesMinor int64  `json:"totalExpensesMinor"`
	NetProfitMinor     int64  `json:"netProfitMinor"`
	CurrencyCode       string `json:"currencyCode"`
}
