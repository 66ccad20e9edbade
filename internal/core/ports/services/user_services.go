package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rabi993/banking-system/internal/core/domain"
	"github.com/rabi993/banking-system/internal/dto"
)

// UserSvcFacade is the self-service surface of the bank: one customer acting
// on their own account. The account number comes from the authenticated
// session, never from the request body.
type UserSvcFacade interface {
	// Register opens an account and returns its snapshot, including the
	// freshly assigned account number.
	Register(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	// Login authenticates name/password/account-number against the ledger.
	Login(ctx context.Context, name, password string, accountNumber int64) (*domain.Account, error)

	GetAccount(ctx context.Context, accountNumber int64) (*domain.Account, error)
	Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error)
	Transfer(ctx context.Context, accountNumber, targetAccountNumber int64, amount decimal.Decimal) error
	TakeLoan(ctx context.Context, accountNumber int64, amount decimal.Decimal) error
	RepayLoan(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error)
	History(ctx context.Context, accountNumber int64) ([]domain.TransactionEntry, error)
}
