package domain

// Currency is an ISO-4217 reference row.
type Currency struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ExpenseCategory classifies ledger expense lines. AccountID, when set, is
// the EXPENSE account that cash-box expenses in this category post against.
type ExpenseCategory struct {
	CategoryID int64  `json:"categoryID"`
	Label      string `json:"label"`
	AccountID  *int64 `json:"accountID,omitempty"`
}

// DeliveryStatus is a lookup row for delivery states.
type DeliveryStatus struct {
	StatusID int64  `json:"statusID"`
	Label    string `json:"label"`
}
