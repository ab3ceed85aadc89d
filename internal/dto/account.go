package dto

import "github.com/protecfeu/erp_backend/internal/core/domain"

// CreateAccountRequest defines the payload for creating a ledger account.
type CreateAccountRequest struct {
	Label       string `json:"label" binding:"required"`
	AccountType string `json:"accountType" binding:"required,account_type"`
}

// AccountResponse defines the data returned for a ledger account.
type AccountResponse struct {
	AccountID   int64  `json:"accountID"`
	Label       string `json:"label"`
	AccountType string `json:"accountType"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Label:       a.Label,
		AccountType: string(a.AccountType),
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
