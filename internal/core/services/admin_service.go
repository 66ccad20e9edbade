package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rabi993/banking-system/internal/apperrors"
	"github.com/rabi993/banking-system/internal/core/domain"
	portssvc "github.com/rabi993/banking-system/internal/core/ports/services"
	"github.com/rabi993/banking-system/internal/dto"
)

// CredentialVerifier checks the admin credentials. Isolated behind an
// interface so the fixed-identity check can be swapped for a real credential
// store without touching the facade.
type CredentialVerifier interface {
	Verify(name, password string) bool
}

// fixedCredentialVerifier compares against a single configured identity.
type fixedCredentialVerifier struct {
	name     string
	password string
}

// NewFixedCredentialVerifier builds the default admin credential check.
func NewFixedCredentialVerifier(name, password string) CredentialVerifier {
	return &fixedCredentialVerifier{name: name, password: password}
}

func (v *fixedCredentialVerifier) Verify(name, password string) bool {
	return v.name == name && v.password == password
}

// adminService implements the AdminSvcFacade interface. The admin is not an
// account; it is a role with full registry authority, granted after a single
// credential check.
type adminService struct {
	BaseService
	ledger   *LedgerService
	verifier CredentialVerifier
}

// NewAdminService creates the admin role facade over the ledger.
func NewAdminService(ledger *LedgerService, verifier CredentialVerifier) portssvc.AdminSvcFacade {
	return &adminService{ledger: ledger, verifier: verifier}
}

var _ portssvc.AdminSvcFacade = (*adminService)(nil)

func (s *adminService) Login(ctx context.Context, name, password string) error {
	if !s.verifier.Verify(name, password) {
		s.LogWarn(ctx, "Admin login failed", "name", name)
		return apperrors.ErrAuthenticationFailed
	}
	s.LogInfo(ctx, "Admin logged in")
	return nil
}

func (s *adminService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	return s.ledger.CreateAccount(ctx, req)
}

func (s *adminService) DeleteAccount(ctx context.Context, accountNumber int64) error {
	return s.ledger.DeleteAccount(ctx, accountNumber)
}

func (s *adminService) ListAccounts(ctx context.Context) []domain.Account {
	return s.ledger.ListAccounts(ctx)
}

func (s *adminService) History(ctx context.Context, accountNumber int64) ([]domain.TransactionEntry, error) {
	return s.ledger.History(ctx, accountNumber)
}

func (s *adminService) TotalBalance(ctx context.Context) decimal.Decimal {
	return s.ledger.TotalBalance(ctx)
}

func (s *adminService) TotalLoanAmount(ctx context.Context) decimal.Decimal {
	return s.ledger.TotalLoanAmount(ctx)
}

func (s *adminService) LoanFeature(ctx context.Context) bool {
	return s.ledger.LoanFeature(ctx)
}

func (s *adminService) SetLoanFeature(ctx context.Context, enabled bool) {
	s.ledger.SetLoanFeature(ctx, enabled)
}

func (s *adminService) SetAccountTransactions(ctx context.Context, accountNumber int64, enabled bool) error {
	return s.ledger.SetTransactionsEnabled(ctx, accountNumber, enabled)
}

func (s *adminService) SetAccountLoan(ctx context.Context, accountNumber int64, enabled bool) error {
	return s.ledger.SetLoanEnabled(ctx, accountNumber, enabled)
}
