package domain

// AccountType defines the fundamental accounting type of a general ledger account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Expense   AccountType = "EXPENSE"
	Income    AccountType = "INCOME"
	Equity    AccountType = "EQUITY"
)

// ValidAccountType reports whether t is one of the five enumerated account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Expense, Income, Equity:
		return true
	}
	return false
}

// Account represents a general ledger account. The type is fixed at creation;
// accounts are never deleted because historical ledger lines reference them.
type Account struct {
	AccountID   int64       `json:"accountID"`
	Label       string      `json:"label"`
	AccountType AccountType `json:"accountType"`
}
