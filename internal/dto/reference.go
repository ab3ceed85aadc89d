package dto

import "github.com/protecfeu/erp_backend/internal/core/domain"

// CreateCurrencyRequest defines the payload for registering a currency.
type CreateCurrencyRequest struct {
	Code  string `json:"code" binding:"required,len=3"`
	Label string `json:"label" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// CreateExpenseCategoryRequest defines the payload for creating an expense
// category. AccountID binds the category to the EXPENSE account that cash-box
// expenses post against.
type CreateExpenseCategoryRequest struct {
	Label     string `json:"label" binding:"required"`
	AccountID *int64 `json:"accountID,omitempty"`
}

// ExpenseCategoryResponse defines the data returned for an expense category.
type ExpenseCategoryResponse struct {
	CategoryID int64  `json:"categoryID"`
	Label      string `json:"label"`
	AccountID  *int64 `json:"accountID,omitempty"`
}

// CreateDeliveryStatusRequest defines the payload for a delivery status row.
type CreateDeliveryStatusRequest struct {
	Label string `json:"label" binding:"required"`
}

// DeliveryStatusResponse defines the data returned for a delivery status.
type DeliveryStatusResponse struct {
	StatusID int64  `json:"statusID"`
	Label    string `json:"label"`
}

// ToCurrencyResponses converts domain currencies.
func ToCurrencyResponses(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		responses[i] = CurrencyResponse(c)
	}
	return responses
}

// ToExpenseCategoryResponse converts a domain expense category.
func ToExpenseCategoryResponse(c *domain.ExpenseCategory) ExpenseCategoryResponse {
	return ExpenseCategoryResponse{
		CategoryID: c.CategoryID,
		Label:      c.Label,
		AccountID:  c.AccountID,
	}
}

// ToExpenseCategoryResponses converts domain expense categories.
func ToExpenseCategoryResponses(categories []domain.ExpenseCategory) []ExpenseCategoryResponse {
	responses := make([]ExpenseCategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToExpenseCategoryResponse(&categories[i])
	}
	return responses
}

// ToDeliveryStatusResponses converts domain delivery statuses.
func ToDeliveryStatusResponses(statuses []domain.DeliveryStatus) []DeliveryStatusResponse {
	responses := make([]DeliveryStatusResponse, len(statuses))
	for i, s := range statuses {
		responses[i] = DeliveryStatusResponse(s)
	}
	return responses
}
