package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/rabi993/banking-system/internal/apperrors"
	"github.com/rabi993/banking-system/internal/core/domain"
	"github.com/rabi993/banking-system/internal/core/services"
	portssvc "github.com/rabi993/banking-system/internal/core/ports/services"
	"github.com/rabi993/banking-system/internal/dto"
)

type AdminServiceTestSuite struct {
	suite.Suite
	ledger  *services.LedgerService
	user    portssvc.UserSvcFacade
	service portssvc.AdminSvcFacade
}

func (suite *AdminServiceTestSuite) SetupTest() {
	suite.ledger = services.NewLedgerService()
	suite.user = services.NewUserService(suite.ledger)
	suite.service = services.NewAdminService(suite.ledger, services.NewFixedCredentialVerifier("admin", "admin"))
}

func (suite *AdminServiceTestSuite) createAccount(name string) int64 {
	acc, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name:        name,
		Email:       name + "@example.com",
		Password:    "pw",
		Address:     "3 Bank Road",
		AccountType: domain.Savings,
	})
	suite.Require().NoError(err)
	return acc.AccountNumber
}

func (suite *AdminServiceTestSuite) TestLogin_FixedCredentials() {
	ctx := context.Background()
	suite.NoError(suite.service.Login(ctx, "admin", "admin"))
	suite.ErrorIs(suite.service.Login(ctx, "admin", "nope"), apperrors.ErrAuthenticationFailed)
	suite.ErrorIs(suite.service.Login(ctx, "Admin", "admin"), apperrors.ErrAuthenticationFailed)
}

func (suite *AdminServiceTestSuite) TestAccountLifecycleAndListing() {
	ctx := context.Background()
	first := suite.createAccount("Aysha")
	second := suite.createAccount("Bashir")

	accounts := suite.service.ListAccounts(ctx)
	suite.Require().Len(accounts, 2)
	// Listing is ordered by account number.
	suite.Less(accounts[0].AccountNumber, accounts[1].AccountNumber)

	suite.Require().NoError(suite.service.DeleteAccount(ctx, first))
	suite.ErrorIs(suite.service.DeleteAccount(ctx, first), apperrors.ErrNotFound)
	suite.Len(suite.service.ListAccounts(ctx), 1)
	suite.Equal(second, suite.service.ListAccounts(ctx)[0].AccountNumber)
}

func (suite *AdminServiceTestSuite) TestAggregateTotals() {
	ctx := context.Background()
	number := suite.createAccount("Chandni")

	_, err := suite.user.Deposit(ctx, number, decimal.NewFromInt(250))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.user.TakeLoan(ctx, number, decimal.NewFromInt(400)))

	suite.True(suite.service.TotalBalance(ctx).Equal(decimal.NewFromInt(250)))
	suite.True(suite.service.TotalLoanAmount(ctx).Equal(decimal.NewFromInt(400)))
}

func (suite *AdminServiceTestSuite) TestLoanFeatureToggle() {
	ctx := context.Background()
	number := suite.createAccount("Dalia")

	suite.True(suite.service.LoanFeature(ctx))
	suite.service.SetLoanFeature(ctx, false)
	suite.False(suite.service.LoanFeature(ctx))

	suite.ErrorIs(suite.user.TakeLoan(ctx, number, decimal.NewFromInt(100)), apperrors.ErrLoanDenied)
}

func (suite *AdminServiceTestSuite) TestAccountFlagOverrides() {
	ctx := context.Background()
	number := suite.createAccount("Emon")

	suite.Require().NoError(suite.service.SetAccountTransactions(ctx, number, false))
	_, err := suite.user.Deposit(ctx, number, decimal.NewFromInt(10))
	suite.ErrorIs(err, apperrors.ErrTransactionsDisabled)

	suite.Require().NoError(suite.service.SetAccountLoan(ctx, number, false))
	suite.ErrorIs(suite.user.TakeLoan(ctx, number, decimal.NewFromInt(10)), apperrors.ErrLoanDisabled)

	suite.ErrorIs(suite.service.SetAccountTransactions(ctx, 1, true), apperrors.ErrNotFound)
}

func (suite *AdminServiceTestSuite) TestHistoryInspection() {
	ctx := context.Background()
	number := suite.createAccount("Farhan")

	_, err := suite.user.Deposit(ctx, number, decimal.NewFromInt(75))
	suite.Require().NoError(err)

	entries, err := suite.service.History(ctx, number)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("Deposited 75", entries[0].Description())
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
