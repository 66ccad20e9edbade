package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rabi993/banking-system/internal/apperrors"
	"github.com/rabi993/banking-system/internal/core/domain"
	"github.com/rabi993/banking-system/internal/dto"
	"github.com/rabi993/banking-system/internal/utils"
)

// LedgerService is the bank: the registry of all accounts, the aggregate
// totals and the bank-wide loan gate. Every balance-affecting mutation is
// funnelled through it, so per-account state and aggregates move together.
//
// One mutex guards the account map, both totals and all per-account state.
// Transfers run inside a single critical section, which makes them atomic
// without any lock ordering concerns. The ledger holds the only live
// *domain.Account values; callers always get snapshots.
type LedgerService struct {
	BaseService

	mu              sync.Mutex
	accounts        map[int64]*domain.Account
	totalBalance    decimal.Decimal
	totalLoanAmount decimal.Decimal
	loanFeature     bool
}

// NewLedgerService creates an empty ledger with the loan feature enabled.
func NewLedgerService() *LedgerService {
	return &LedgerService{
		accounts:        make(map[int64]*domain.Account),
		totalBalance:    decimal.Zero,
		totalLoanAmount: decimal.Zero,
		loanFeature:     true,
	}
}

// snapshot returns a copy of the account safe to hand outside the lock,
// with its own history slice.
func snapshot(a *domain.Account) *domain.Account {
	cp := *a
	cp.History = append([]domain.TransactionEntry(nil), a.History...)
	return &cp
}

// CreateAccount opens a new account for the given profile, assigns it a
// unique 8-digit number and registers it. The number generator is retried
// against live accounts only; numbers of deleted accounts may be reissued.
func (s *LedgerService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	// The HTTP binding rejects unknown types too; this guards callers that
	// reach the ledger directly.
	if !req.AccountType.IsValid() {
		return nil, apperrors.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	number, err := s.nextAccountNumber()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate account number")
		return nil, err
	}

	account := &domain.Account{
		AccountNumber:       number,
		Name:                req.Name,
		Email:               req.Email,
		Password:            req.Password,
		Address:             req.Address,
		AccountType:         req.AccountType,
		Balance:             decimal.Zero,
		LoanAmount:          decimal.Zero,
		TransactionsEnabled: true,
		LoanEnabled:         true,
		CreatedAt:           time.Now(),
	}

	if err := s.insertAccount(account); err != nil {
		s.LogError(ctx, err, "Failed to register account", "account_number", number)
		return nil, err
	}

	s.LogInfo(ctx, "Account created", "account_number", number, "account_type", string(req.AccountType))
	return snapshot(account), nil
}

// nextAccountNumber draws random 8-digit numbers until one is free.
// Collisions are practically unreachable but the check must exist.
func (s *LedgerService) nextAccountNumber() (int64, error) {
	for {
		number, err := utils.GenerateAccountNumber()
		if err != nil {
			return 0, err
		}
		if _, exists := s.accounts[number]; !exists {
			return number, nil
		}
	}
}

// insertAccount registers the account, refusing duplicate numbers.
// Caller must hold the lock.
func (s *LedgerService) insertAccount(account *domain.Account) error {
	if _, exists := s.accounts[account.AccountNumber]; exists {
		return apperrors.ErrDuplicate
	}
	s.accounts[account.AccountNumber] = account
	return nil
}

// DeleteAccount removes the account from the registry. Outstanding balance
// or loans are not settled against the aggregates; they simply vanish.
func (s *LedgerService) DeleteAccount(ctx context.Context, accountNumber int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[accountNumber]; !exists {
		return apperrors.ErrNotFound
	}
	delete(s.accounts, accountNumber)
	s.LogInfo(ctx, "Account deleted", "account_number", accountNumber)
	return nil
}

// GetAccount returns a snapshot of the account or ErrNotFound.
func (s *LedgerService) GetAccount(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[accountNumber]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return snapshot(account), nil
}

// ListAccounts returns snapshots of all accounts ordered by account number.
func (s *LedgerService) ListAccounts(ctx context.Context) []domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		out = append(out, *snapshot(account))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountNumber < out[j].AccountNumber })
	return out
}

// Authenticate looks up the account and requires an exact, case-sensitive
// match of both name and password. This is the sole identity check in the
// system.
func (s *LedgerService) Authenticate(ctx context.Context, name, password string, accountNumber int64) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[accountNumber]
	if !exists || account.Name != name || account.Password != password {
		return nil, apperrors.ErrAuthenticationFailed
	}
	return snapshot(account), nil
}

// Deposit credits the account and the bank-wide total. The amount's sign is
// not validated; a negative deposit is effectively a withdrawal.
func (s *LedgerService) Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[accountNumber]
	if !exists {
		return decimal.Zero, apperrors.ErrNotFound
	}
	if !account.TransactionsEnabled {
		return decimal.Zero, apperrors.ErrTransactionsDisabled
	}

	account.Balance = account.Balance.Add(amount)
	s.totalBalance = s.totalBalance.Add(amount)
	account.History = append(account.History, domain.TransactionEntry{
		Kind:      domain.Deposit,
		Amount:    amount,
		Timestamp: time.Now(),
	})

	s.LogInfo(ctx, "Deposit applied", "account_number", accountNumber, "amount", amount.String())
	return account.Balance, nil
}

// Withdraw debits the account and the bank-wide total. An overdraw against a
// zero balance keeps its historical distinct status.
func (s *LedgerService) Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[accountNumber]
	if !exists {
		return decimal.Zero, apperrors.ErrNotFound
	}
	if !account.TransactionsEnabled {
		return decimal.Zero, apperrors.ErrTransactionsDisabled
	}
	if amount.GreaterThan(account.Balance) {
		if account.Balance.IsZero() {
			return decimal.Zero, apperrors.ErrBankBankrupt
		}
		return decimal.Zero, apperrors.ErrInsufficientBalance
	}

	account.Balance = account.Balance.Sub(amount)
	s.totalBalance = s.totalBalance.Sub(amount)
	account.History = append(account.History, domain.TransactionEntry{
		Kind:      domain.Withdrawal,
		Amount:    amount,
		Timestamp: time.Now(),
	})

	s.LogInfo(ctx, "Withdrawal applied", "account_number", accountNumber, "amount", amount.String())
	return account.Balance, nil
}

// Transfer moves the amount between two accounts in one critical section:
// either both balances move and both histories gain an entry, or nothing
// changes. Only the sender's transaction flag is consulted. The aggregate
// total is untouched; money moved inside the bank does not change the sum
// of balances.
func (s *LedgerService) Transfer(ctx context.Context, fromNumber, toNumber int64, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, fromExists := s.accounts[fromNumber]
	to, toExists := s.accounts[toNumber]
	if !fromExists || !toExists {
		return apperrors.ErrNotFound
	}
	if !from.TransactionsEnabled {
		return apperrors.ErrTransactionsDisabled
	}
	if amount.GreaterThan(from.Balance) {
		return apperrors.ErrInsufficientBalance
	}

	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)

	now := time.Now()
	from.History = append(from.History, domain.TransactionEntry{
		Kind:         domain.TransferOut,
		Amount:       amount,
		Counterparty: toNumber,
		Timestamp:    now,
	})
	to.History = append(to.History, domain.TransactionEntry{
		Kind:         domain.TransferIn,
		Amount:       amount,
		Counterparty: fromNumber,
		Timestamp:    now,
	})

	s.LogInfo(ctx, "Transfer applied",
		"from_account", fromNumber, "to_account", toNumber, "amount", amount.String())
	return nil
}

// TakeLoan credits the account with the loan and consumes one of its two
// loan slots. The account's own flag gates first, then the slot limit and
// the bank-wide gate together. Loan money raises the account balance and the
// outstanding loan totals but not the bank's total balance.
func (s *LedgerService) TakeLoan(ctx context.Context, accountNumber int64, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[accountNumber]
	if !exists {
		return apperrors.ErrNotFound
	}
	if !account.LoanEnabled {
		return apperrors.ErrLoanDisabled
	}
	if account.LoanCount >= 2 || !s.loanFeature {
		return apperrors.ErrLoanDenied
	}

	account.Balance = account.Balance.Add(amount)
	account.LoanCount++
	account.LoanAmount = account.LoanAmount.Add(amount)
	s.totalLoanAmount = s.totalLoanAmount.Add(amount)
	account.History = append(account.History, domain.TransactionEntry{
		Kind:      domain.LoanTaken,
		Amount:    amount,
		Timestamp: time.Now(),
	})

	s.LogInfo(ctx, "Loan granted",
		"account_number", accountNumber, "amount", amount.String(), "loan_count", account.LoanCount)
	return nil
}

// RepayLoan debits the account and reduces the outstanding loan amounts.
// Repayment must fit both the balance and the outstanding loan; it is never
// partial. A loan slot is not freed even when the loan reaches zero.
func (s *LedgerService) RepayLoan(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[accountNumber]
	if !exists {
		return decimal.Zero, apperrors.ErrNotFound
	}
	if amount.GreaterThan(account.Balance) {
		return decimal.Zero, apperrors.ErrInsufficientBalance
	}
	if amount.GreaterThan(account.LoanAmount) {
		return decimal.Zero, apperrors.ErrRepaymentExceedsLoan
	}

	account.Balance = account.Balance.Sub(amount)
	account.LoanAmount = account.LoanAmount.Sub(amount)
	s.totalLoanAmount = s.totalLoanAmount.Sub(amount)
	account.History = append(account.History, domain.TransactionEntry{
		Kind:      domain.LoanRepayment,
		Amount:    amount,
		Timestamp: time.Now(),
	})

	s.LogInfo(ctx, "Loan repayment applied",
		"account_number", accountNumber, "amount", amount.String(), "remaining", account.LoanAmount.String())
	return account.LoanAmount, nil
}

// History returns an ordered copy of the account's transaction history.
func (s *LedgerService) History(ctx context.Context, accountNumber int64) ([]domain.TransactionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[accountNumber]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	out := make([]domain.TransactionEntry, len(account.History))
	copy(out, account.History)
	return out, nil
}

// SetTransactionsEnabled flips the account's transaction flag unconditionally.
func (s *LedgerService) SetTransactionsEnabled(ctx context.Context, accountNumber int64, enabled bool) error {
	return s.setFlag(ctx, accountNumber, enabled, func(a *domain.Account, v bool) { a.TransactionsEnabled = v }, "transactions_enabled")
}

// SetLoanEnabled flips the account's loan flag unconditionally.
func (s *LedgerService) SetLoanEnabled(ctx context.Context, accountNumber int64, enabled bool) error {
	return s.setFlag(ctx, accountNumber, enabled, func(a *domain.Account, v bool) { a.LoanEnabled = v }, "loan_enabled")
}

func (s *LedgerService) setFlag(ctx context.Context, accountNumber int64, enabled bool, set func(*domain.Account, bool), name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[accountNumber]
	if !exists {
		return apperrors.ErrNotFound
	}
	set(account, enabled)
	s.LogInfo(ctx, "Account flag updated", "account_number", accountNumber, name, enabled)
	return nil
}

// SetLoanFeature flips the bank-wide loan gate. When off, no account may
// take a new loan regardless of its own flag.
func (s *LedgerService) SetLoanFeature(ctx context.Context, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loanFeature = enabled
	s.LogInfo(ctx, "Bank loan feature updated", "enabled", enabled)
}

// LoanFeature reports the bank-wide loan gate.
func (s *LedgerService) LoanFeature(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loanFeature
}

// TotalBalance returns the running deposit/withdrawal aggregate. Transfers
// and loans do not move it, and deleted accounts are not settled against it.
func (s *LedgerService) TotalBalance(ctx context.Context) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalBalance
}

// TotalLoanAmount returns the outstanding loan aggregate across all accounts.
func (s *LedgerService) TotalLoanAmount(ctx context.Context) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLoanAmount
}
