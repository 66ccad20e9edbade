package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rabi993/banking-system/internal/core/domain"
	"github.com/rabi993/banking-system/internal/dto"
)

// AdminSvcFacade is the full-authority surface of the bank: account
// lifecycle, registry inspection, aggregate totals and feature overrides.
type AdminSvcFacade interface {
	// Login checks the fixed admin credentials.
	Login(ctx context.Context, name, password string) error

	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountNumber int64) error
	ListAccounts(ctx context.Context) []domain.Account
	History(ctx context.Context, accountNumber int64) ([]domain.TransactionEntry, error)

	TotalBalance(ctx context.Context) decimal.Decimal
	TotalLoanAmount(ctx context.Context) decimal.Decimal
	LoanFeature(ctx context.Context) bool
	SetLoanFeature(ctx context.Context, enabled bool)

	SetAccountTransactions(ctx context.Context, accountNumber int64, enabled bool) error
	SetAccountLoan(ctx context.Context, accountNumber int64, enabled bool) error
}
