package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/rabi993/banking-system/internal/core/ports/services"
	"github.com/rabi993/banking-system/internal/dto"
)

// accountHandler handles the user-role operations on the session's own
// account.
type accountHandler struct {
	userService portssvc.UserSvcFacade
}

func newAccountHandler(us portssvc.UserSvcFacade) *accountHandler {
	return &accountHandler{userService: us}
}

// registerAccountRoutes registers the user-role routes. The group is already
// guarded by the user-role auth middleware.
func registerAccountRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newAccountHandler(userService)

	rg.GET("", h.getAccount)
	rg.POST("/deposit", h.deposit)
	rg.POST("/withdraw", h.withdraw)
	rg.POST("/transfer", h.transfer)
	rg.POST("/loans", h.takeLoan)
	rg.POST("/loans/repayments", h.repayLoan)
	rg.GET("/transactions", h.listTransactions)
}

// getAccount godoc
// @Summary Get own account
// @Description Returns the logged-in customer's account, including balance and loan state.
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/me [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	number, ok := sessionAccountNumber(c)
	if !ok {
		return
	}

	account, err := h.userService.GetAccount(c.Request.Context(), number)
	if err != nil {
		respondBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deposit godoc
// @Summary Deposit
// @Description Credits the logged-in account and returns the new balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param amount body dto.AmountRequest true "Amount"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Transactions disabled"
// @Security BearerAuth
// @Router /accounts/me/deposit [post]
func (h *accountHandler) deposit(c *gin.Context) {
	number, ok := sessionAccountNumber(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	balance, err := h.userService.Deposit(c.Request.Context(), number, req.Amount)
	if err != nil {
		respondBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountNumber: number, Balance: balance})
}

// withdraw godoc
// @Summary Withdraw
// @Description Debits the logged-in account and returns the new balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param amount body dto.AmountRequest true "Amount"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Transactions disabled or insufficient balance"
// @Security BearerAuth
// @Router /accounts/me/withdraw [post]
func (h *accountHandler) withdraw(c *gin.Context) {
	number, ok := sessionAccountNumber(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	balance, err := h.userService.Withdraw(c.Request.Context(), number, req.Amount)
	if err != nil {
		respondBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountNumber: number, Balance: balance})
}

// transfer godoc
// @Summary Transfer
// @Description Moves money from the logged-in account to another account, atomically.
// @Tags accounts
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Target account not found"
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/me/transfer [post]
func (h *accountHandler) transfer(c *gin.Context) {
	number, ok := sessionAccountNumber(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.userService.Transfer(c.Request.Context(), number, req.TargetAccountNumber, req.Amount); err != nil {
		respondBusinessError(c, err)
		return
	}

	account, err := h.userService.GetAccount(c.Request.Context(), number)
	if err != nil {
		respondBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountNumber: number, Balance: account.Balance})
}

// takeLoan godoc
// @Summary Take a loan
// @Description Credits the account with the loan amount; at most two loan slots per account.
// @Tags accounts
// @Accept json
// @Produce json
// @Param amount body dto.AmountRequest true "Loan amount"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Loan disabled or denied"
// @Security BearerAuth
// @Router /accounts/me/loans [post]
func (h *accountHandler) takeLoan(c *gin.Context) {
	number, ok := sessionAccountNumber(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.userService.TakeLoan(c.Request.Context(), number, req.Amount); err != nil {
		respondBusinessError(c, err)
		return
	}

	account, err := h.userService.GetAccount(c.Request.Context(), number)
	if err != nil {
		respondBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountNumber: number, Balance: account.Balance})
}

// repayLoan godoc
// @Summary Repay a loan
// @Description Debits the account and returns the remaining outstanding loan amount.
// @Tags accounts
// @Accept json
// @Produce json
// @Param amount body dto.AmountRequest true "Repayment amount"
// @Success 200 {object} dto.RepaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Insufficient balance or repayment exceeds loan"
// @Security BearerAuth
// @Router /accounts/me/loans/repayments [post]
func (h *accountHandler) repayLoan(c *gin.Context) {
	number, ok := sessionAccountNumber(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	remaining, err := h.userService.RepayLoan(c.Request.Context(), number, req.Amount)
	if err != nil {
		respondBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RepaymentResponse{AccountNumber: number, RemainingLoanAmount: remaining})
}

// listTransactions godoc
// @Summary Transaction history
// @Description Returns the account's full ordered transaction history.
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.TransactionHistoryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/me/transactions [get]
func (h *accountHandler) listTransactions(c *gin.Context) {
	number, ok := sessionAccountNumber(c)
	if !ok {
		return
	}

	entries, err := h.userService.History(c.Request.Context(), number)
	if err != nil {
		respondBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TransactionHistoryResponse{
		AccountNumber: number,
		Transactions:  dto.ToTransactionResponses(entries),
	})
}
