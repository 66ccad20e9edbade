package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/rabi993/banking-system/internal/core/ports/services"
	"github.com/rabi993/banking-system/internal/dto"
)

// adminHandler handles the admin-role operations: account lifecycle,
// registry inspection and feature overrides.
type adminHandler struct {
	adminService portssvc.AdminSvcFacade
}

func newAdminHandler(as portssvc.AdminSvcFacade) *adminHandler {
	return &adminHandler{adminService: as}
}

// registerAdminRoutes registers the admin-role routes. The group is already
// guarded by the admin-role auth middleware.
func registerAdminRoutes(rg *gin.RouterGroup, adminService portssvc.AdminSvcFacade) {
	h := newAdminHandler(adminService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.DELETE("/:accountNumber", h.deleteAccount)
		accounts.GET("/:accountNumber/transactions", h.accountTransactions)
		accounts.PUT("/:accountNumber/transactions-enabled", h.setTransactionsEnabled)
		accounts.PUT("/:accountNumber/loan-enabled", h.setLoanEnabled)
	}

	bank := rg.Group("/bank")
	{
		bank.GET("/summary", h.bankSummary)
		bank.PUT("/loan-feature", h.setLoanFeature)
	}
}

// accountNumberParam parses the :accountNumber path parameter.
func accountNumberParam(c *gin.Context) (int64, bool) {
	number, err := strconv.ParseInt(c.Param("accountNumber"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid account number"})
		return 0, false
	}
	return number, true
}

// createAccount godoc
// @Summary Create an account
// @Description Opens an account on a customer's behalf.
// @Tags admin
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account profile"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/accounts [post]
func (h *adminHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.adminService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondBusinessError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List all accounts
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /admin/accounts [get]
func (h *adminHandler) listAccounts(c *gin.Context) {
	accounts := h.adminService.ListAccounts(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Removes the account from the registry. Outstanding balance or loans are not settled.
// @Tags admin
// @Produce json
// @Param accountNumber path int true "Account number"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/accounts/{accountNumber} [delete]
func (h *adminHandler) deleteAccount(c *gin.Context) {
	number, ok := accountNumberParam(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteAccount(c.Request.Context(), number); err != nil {
		respondBusinessError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// accountTransactions godoc
// @Summary Account transaction history
// @Tags admin
// @Produce json
// @Param accountNumber path int true "Account number"
// @Success 200 {object} dto.TransactionHistoryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/accounts/{accountNumber}/transactions [get]
func (h *adminHandler) accountTransactions(c *gin.Context) {
	number, ok := accountNumberParam(c)
	if !ok {
		return
	}

	entries, err := h.adminService.History(c.Request.Context(), number)
	if err != nil {
		respondBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TransactionHistoryResponse{
		AccountNumber: number,
		Transactions:  dto.ToTransactionResponses(entries),
	})
}

// setTransactionsEnabled godoc
// @Summary Enable or disable an account's transactions
// @Tags admin
// @Accept json
// @Produce json
// @Param accountNumber path int true "Account number"
// @Param flag body dto.SetEnabledRequest true "Flag value"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/accounts/{accountNumber}/transactions-enabled [put]
func (h *adminHandler) setTransactionsEnabled(c *gin.Context) {
	h.setAccountFlag(c, h.adminService.SetAccountTransactions)
}

// setLoanEnabled godoc
// @Summary Enable or disable an account's loan feature
// @Tags admin
// @Accept json
// @Produce json
// @Param accountNumber path int true "Account number"
// @Param flag body dto.SetEnabledRequest true "Flag value"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/accounts/{accountNumber}/loan-enabled [put]
func (h *adminHandler) setLoanEnabled(c *gin.Context) {
	h.setAccountFlag(c, h.adminService.SetAccountLoan)
}

func (h *adminHandler) setAccountFlag(c *gin.Context, set func(ctx context.Context, accountNumber int64, enabled bool) error) {
	number, ok := accountNumberParam(c)
	if !ok {
		return
	}

	var req dto.SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := set(c.Request.Context(), number, *req.Enabled); err != nil {
		respondBusinessError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bankSummary godoc
// @Summary Bank-wide totals
// @Description Returns the running total balance, outstanding loan amount and the loan gate state.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.BankSummaryResponse
// @Security BearerAuth
// @Router /admin/bank/summary [get]
func (h *adminHandler) bankSummary(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, dto.BankSummaryResponse{
		TotalBalance:       h.adminService.TotalBalance(ctx),
		TotalLoanAmount:    h.adminService.TotalLoanAmount(ctx),
		LoanFeatureEnabled: h.adminService.LoanFeature(ctx),
	})
}

// setLoanFeature godoc
// @Summary Toggle the bank-wide loan gate
// @Tags admin
// @Accept json
// @Produce json
// @Param flag body dto.SetEnabledRequest true "Gate value"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/bank/loan-feature [put]
func (h *adminHandler) setLoanFeature(c *gin.Context) {
	var req dto.SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	h.adminService.SetLoanFeature(c.Request.Context(), *req.Enabled)
	c.Status(http.StatusNoContent)
}
