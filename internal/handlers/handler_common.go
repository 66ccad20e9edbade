package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rabi993/banking-system/internal/apperrors"
	"github.com/rabi993/banking-system/internal/middleware"
)

// ErrorResponse is the generic error payload. The message is the stable
// sentinel text so the shell can render it unchanged.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondBusinessError maps a core error to its HTTP status and writes the
// stable message. Unknown errors become 500 without leaking internals.
func respondBusinessError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrAuthenticationFailed):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrTransactionsDisabled),
		errors.Is(err, apperrors.ErrLoanDisabled),
		errors.Is(err, apperrors.ErrLoanDenied),
		errors.Is(err, apperrors.ErrInsufficientBalance),
		errors.Is(err, apperrors.ErrBankBankrupt),
		errors.Is(err, apperrors.ErrRepaymentExceedsLoan):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// sessionAccountNumber pulls the authenticated account number out of the
// request context; the auth middleware guarantees it for user routes.
func sessionAccountNumber(c *gin.Context) (int64, bool) {
	number, ok := middleware.GetAccountNumberFromCtx(c.Request.Context())
	if !ok {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Account number not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return number, ok
}
