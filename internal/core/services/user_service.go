package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rabi993/banking-system/internal/core/domain"
	portssvc "github.com/rabi993/banking-system/internal/core/ports/services"
	"github.com/rabi993/banking-system/internal/dto"
)

// userService implements the UserSvcFacade interface. It carries no state of
// its own beyond the ledger reference; every operation delegates to the
// ledger with the caller's own account number.
type userService struct {
	BaseService
	ledger *LedgerService
}

// NewUserService creates the user role facade over the ledger.
func NewUserService(ledger *LedgerService) portssvc.UserSvcFacade {
	return &userService{ledger: ledger}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	return s.ledger.CreateAccount(ctx, req)
}

func (s *userService) Login(ctx context.Context, name, password string, accountNumber int64) (*domain.Account, error) {
	account, err := s.ledger.Authenticate(ctx, name, password, accountNumber)
	if err != nil {
		s.LogWarn(ctx, "User login failed", "account_number", accountNumber)
		return nil, err
	}
	s.LogInfo(ctx, "User logged in", "account_number", accountNumber)
	return account, nil
}

func (s *userService) GetAccount(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	return s.ledger.GetAccount(ctx, accountNumber)
}

func (s *userService) Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.ledger.Deposit(ctx, accountNumber, amount)
}

func (s *userService) Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.ledger.Withdraw(ctx, accountNumber, amount)
}

func (s *userService) Transfer(ctx context.Context, accountNumber, targetAccountNumber int64, amount decimal.Decimal) error {
	return s.ledger.Transfer(ctx, accountNumber, targetAccountNumber, amount)
}

func (s *userService) TakeLoan(ctx context.Context, accountNumber int64, amount decimal.Decimal) error {
	return s.ledger.TakeLoan(ctx, accountNumber, amount)
}

func (s *userService) RepayLoan(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.ledger.RepayLoan(ctx, accountNumber, amount)
}

func (s *userService) History(ctx context.Context, accountNumber int64) ([]domain.TransactionEntry, error) {
	return s.ledger.History(ctx, accountNumber)
}
