package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rabi993/banking-system/internal/core/domain"
)

// CreateAccountRequest defines the profile needed to open a new account.
// Used both for self-service signup and admin-side creation.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	Email       string             `json:"email" binding:"required,email"`
	Password    string             `json:"password" binding:"required"`
	Address     string             `json:"address" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=SAVINGS CURRENT"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account minus the password.
type AccountResponse struct {
	AccountNumber       int64              `json:"accountNumber"`
	Name                string             `json:"name"`
	Email               string             `json:"email"`
	Address             string             `json:"address"`
	AccountType         domain.AccountType `json:"accountType"`
	Balance             decimal.Decimal    `json:"balance"`
	LoanCount           int                `json:"loanCount"`
	LoanAmount          decimal.Decimal    `json:"loanAmount"`
	TransactionsEnabled bool               `json:"transactionsEnabled"`
	LoanEnabled         bool               `json:"loanEnabled"`
	CreatedAt           time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber:       acc.AccountNumber,
		Name:                acc.Name,
		Email:               acc.Email,
		Address:             acc.Address,
		AccountType:         acc.AccountType,
		Balance:             acc.Balance,
		LoanCount:           acc.LoanCount,
		LoanAmount:          acc.LoanAmount,
		TransactionsEnabled: acc.TransactionsEnabled,
		LoanEnabled:         acc.LoanEnabled,
		CreatedAt:           acc.CreatedAt,
	}
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain.Account to the list DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return ListAccountsResponse{Accounts: res}
}

// BalanceResponse defines the data returned after a balance-changing operation.
type BalanceResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}
