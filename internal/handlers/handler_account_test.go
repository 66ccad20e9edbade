package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rabi993/banking-system/internal/apperrors"
	"github.com/rabi993/banking-system/internal/core/domain"
	portssvc "github.com/rabi993/banking-system/internal/core/ports/services"
	"github.com/rabi993/banking-system/internal/dto"
	"github.com/rabi993/banking-system/internal/handlers"
	"github.com/rabi993/banking-system/internal/middleware"
	"github.com/rabi993/banking-system/internal/platform/config"
	"github.com/rabi993/banking-system/internal/utils"
)

// --- Mock UserService ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockUserService) Login(ctx context.Context, name, password string, accountNumber int64) (*domain.Account, error) {
	args := m.Called(ctx, name, password, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockUserService) GetAccount(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockUserService) Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountNumber, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockUserService) Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountNumber, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockUserService) Transfer(ctx context.Context, accountNumber, targetAccountNumber int64, amount decimal.Decimal) error {
	args := m.Called(ctx, accountNumber, targetAccountNumber, amount)
	return args.Error(0)
}
func (m *MockUserService) TakeLoan(ctx context.Context, accountNumber int64, amount decimal.Decimal) error {
	args := m.Called(ctx, accountNumber, amount)
	return args.Error(0)
}
func (m *MockUserService) RepayLoan(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountNumber, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockUserService) History(ctx context.Context, accountNumber int64) ([]domain.TransactionEntry, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionEntry), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock AdminService ---

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(ctx context.Context, name, password string) error {
	args := m.Called(ctx, name, password)
	return args.Error(0)
}
func (m *MockAdminService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAdminService) DeleteAccount(ctx context.Context, accountNumber int64) error {
	args := m.Called(ctx, accountNumber)
	return args.Error(0)
}
func (m *MockAdminService) ListAccounts(ctx context.Context) []domain.Account {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Account)
}
func (m *MockAdminService) History(ctx context.Context, accountNumber int64) ([]domain.TransactionEntry, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionEntry), args.Error(1)
}
func (m *MockAdminService) TotalBalance(ctx context.Context) decimal.Decimal {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal)
}
func (m *MockAdminService) TotalLoanAmount(ctx context.Context) decimal.Decimal {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal)
}
func (m *MockAdminService) LoanFeature(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}
func (m *MockAdminService) SetLoanFeature(ctx context.Context, enabled bool) {
	m.Called(ctx, enabled)
}
func (m *MockAdminService) SetAccountTransactions(ctx context.Context, accountNumber int64, enabled bool) error {
	args := m.Called(ctx, accountNumber, enabled)
	return args.Error(0)
}
func (m *MockAdminService) SetAccountLoan(ctx context.Context, accountNumber int64, enabled bool) error {
	args := m.Called(ctx, accountNumber, enabled)
	return args.Error(0)
}

var _ portssvc.AdminSvcFacade = (*MockAdminService)(nil)

// --- Test Suite Setup ---

const testAccountNumber int64 = 12345678

type HandlerTestSuite struct {
	suite.Suite
	mockUser  *MockUserService
	mockAdmin *MockAdminService
	cfg       *config.Config
	router    *gin.Engine
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockUser = new(MockUserService)
	suite.mockAdmin = new(MockAdminService)
	suite.cfg = &config.Config{
		Port:              "8080",
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Minute,
		JWTIssuer:         "banking-system-test",
		AuthRateLimit:     "100-M",
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		User:  suite.mockUser,
		Admin: suite.mockAdmin,
	})
}

func (suite *HandlerTestSuite) userToken() string {
	token, err := utils.GenerateSessionToken(
		strconv.FormatInt(testAccountNumber, 10), middleware.RoleUser,
		suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) adminToken() string {
	token, err := utils.GenerateSessionToken(
		"admin", middleware.RoleAdmin,
		suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func testAccount() *domain.Account {
	return &domain.Account{
		AccountNumber:       testAccountNumber,
		Name:                "Tania",
		Email:               "tania@example.com",
		Address:             "Dhaka",
		AccountType:         domain.Savings,
		Balance:             decimal.NewFromInt(100),
		LoanAmount:          decimal.Zero,
		TransactionsEnabled: true,
		LoanEnabled:         true,
		CreatedAt:           time.Now(),
	}
}

// --- Auth ---

func (suite *HandlerTestSuite) TestRegister_Created() {
	suite.mockUser.On("Register", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(testAccount(), nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/register", "", dto.CreateAccountRequest{
		Name: "Tania", Email: "tania@example.com", Password: "pw",
		Address: "Dhaka", AccountType: domain.Savings,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RegisterResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(testAccountNumber, resp.AccountNumber)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRegister_InvalidAccountType() {
	w := suite.doJSON(http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"name": "X", "email": "x@example.com", "password": "pw",
		"address": "Y", "accountType": "CHECKING",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUser.AssertNotCalled(suite.T(), "Register")
}

func (suite *HandlerTestSuite) TestLogin_IssuesToken() {
	suite.mockUser.On("Login", mock.Anything, "Tania", "pw", testAccountNumber).
		Return(testAccount(), nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Name: "Tania", Password: "pw", AccountNumber: testAccountNumber,
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)

	claims, err := utils.ParseSessionToken(resp.Token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(middleware.RoleUser, claims.Role)
	suite.Equal(strconv.FormatInt(testAccountNumber, 10), claims.Subject)
}

func (suite *HandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockUser.On("Login", mock.Anything, "Tania", "nope", testAccountNumber).
		Return(nil, apperrors.ErrAuthenticationFailed).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Name: "Tania", Password: "nope", AccountNumber: testAccountNumber,
	})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestAdminLogin_IssuesAdminToken() {
	suite.mockAdmin.On("Login", mock.Anything, "admin", "admin").Return(nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/admin/login", "", dto.AdminLoginRequest{
		Name: "admin", Password: "admin",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	claims, err := utils.ParseSessionToken(resp.Token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(middleware.RoleAdmin, claims.Role)
}

// --- Middleware gating ---

func (suite *HandlerTestSuite) TestUserRoutes_RequireToken() {
	w := suite.doJSON(http.MethodGet, "/api/v1/accounts/me", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestUserRoutes_RejectAdminToken() {
	w := suite.doJSON(http.MethodGet, "/api/v1/accounts/me", suite.adminToken(), nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestAdminRoutes_RejectUserToken() {
	w := suite.doJSON(http.MethodGet, "/api/v1/admin/bank/summary", suite.userToken(), nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

// --- User operations ---

func (suite *HandlerTestSuite) TestDeposit_ReturnsNewBalance() {
	amount := decimal.NewFromInt(40)
	suite.mockUser.On("Deposit", mock.Anything, testAccountNumber, mock.MatchedBy(func(a decimal.Decimal) bool {
		return a.Equal(amount)
	})).Return(decimal.NewFromInt(140), nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/accounts/me/deposit", suite.userToken(), dto.AmountRequest{Amount: amount})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(testAccountNumber, resp.AccountNumber)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(140)))
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestWithdraw_InsufficientMapsTo422() {
	suite.mockUser.On("Withdraw", mock.Anything, testAccountNumber, mock.Anything).
		Return(decimal.Zero, apperrors.ErrInsufficientBalance).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/accounts/me/withdraw", suite.userToken(), dto.AmountRequest{Amount: decimal.NewFromInt(500)})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("insufficient balance", resp["error"])
}

func (suite *HandlerTestSuite) TestWithdraw_ZeroBalanceKeepsDistinctMessage() {
	suite.mockUser.On("Withdraw", mock.Anything, testAccountNumber, mock.Anything).
		Return(decimal.Zero, apperrors.ErrBankBankrupt).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/accounts/me/withdraw", suite.userToken(), dto.AmountRequest{Amount: decimal.NewFromInt(1)})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("sorry, the bank will be bankrupt", resp["error"])
}

func (suite *HandlerTestSuite) TestTransfer_TargetMissingMapsTo404() {
	suite.mockUser.On("Transfer", mock.Anything, testAccountNumber, int64(99999999), mock.Anything).
		Return(apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/accounts/me/transfer", suite.userToken(), dto.TransferRequest{
		Amount: decimal.NewFromInt(10), TargetAccountNumber: 99999999,
	})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListTransactions_RendersDescriptions() {
	entries := []domain.TransactionEntry{
		{Kind: domain.Deposit, Amount: decimal.NewFromInt(100), Timestamp: time.Now()},
		{Kind: domain.TransferOut, Amount: decimal.NewFromInt(25), Counterparty: 87654321, Timestamp: time.Now()},
	}
	suite.mockUser.On("History", mock.Anything, testAccountNumber).Return(entries, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/accounts/me/transactions", suite.userToken(), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionHistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 2)
	suite.Equal("Deposited 100", resp.Transactions[0].Description)
	suite.Equal("Transferred 25 to account 87654321", resp.Transactions[1].Description)
}

// --- Admin operations ---

func (suite *HandlerTestSuite) TestBankSummary() {
	suite.mockAdmin.On("TotalBalance", mock.Anything).Return(decimal.NewFromInt(1000)).Once()
	suite.mockAdmin.On("TotalLoanAmount", mock.Anything).Return(decimal.NewFromInt(300)).Once()
	suite.mockAdmin.On("LoanFeature", mock.Anything).Return(true).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/admin/bank/summary", suite.adminToken(), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BankSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.TotalBalance.Equal(decimal.NewFromInt(1000)))
	suite.True(resp.TotalLoanAmount.Equal(decimal.NewFromInt(300)))
	suite.True(resp.LoanFeatureEnabled)
}

func (suite *HandlerTestSuite) TestDeleteAccount_MissingMapsTo404() {
	suite.mockAdmin.On("DeleteAccount", mock.Anything, int64(11111111)).
		Return(apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodDelete, "/api/v1/admin/accounts/11111111", suite.adminToken(), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestSetAccountTransactions_ExplicitFalse() {
	suite.mockAdmin.On("SetAccountTransactions", mock.Anything, testAccountNumber, false).
		Return(nil).Once()

	enabled := false
	w := suite.doJSON(http.MethodPut, "/api/v1/admin/accounts/12345678/transactions-enabled",
		suite.adminToken(), dto.SetEnabledRequest{Enabled: &enabled})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAdmin.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSetLoanFeature() {
	suite.mockAdmin.On("SetLoanFeature", mock.Anything, false).Once()

	enabled := false
	w := suite.doJSON(http.MethodPut, "/api/v1/admin/bank/loan-feature",
		suite.adminToken(), dto.SetEnabledRequest{Enabled: &enabled})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAdmin.AssertExpectations(suite.T())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
