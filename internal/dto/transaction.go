package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rabi993/banking-system/internal/core/domain"
)

// AmountRequest carries the amount for deposit/withdraw/loan operations.
// Deliberately no sign constraint: the ledger accepts what the teller types,
// matching the historical behavior.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest carries a transfer amount and its destination.
type TransferRequest struct {
	Amount              decimal.Decimal `json:"amount"`
	TargetAccountNumber int64           `json:"targetAccountNumber" binding:"required"`
}

// RepaymentResponse is returned after a successful loan repayment.
type RepaymentResponse struct {
	AccountNumber       int64           `json:"accountNumber"`
	RemainingLoanAmount decimal.Decimal `json:"remainingLoanAmount"`
}

// TransactionResponse is one rendered history entry.
type TransactionResponse struct {
	Kind         domain.TransactionKind `json:"kind"`
	Amount       decimal.Decimal        `json:"amount"`
	Counterparty int64                  `json:"counterparty,omitempty"`
	Timestamp    time.Time              `json:"timestamp"`
	Description  string                 `json:"description"`
}

// ToTransactionResponses converts history entries preserving their order.
func ToTransactionResponses(entries []domain.TransactionEntry) []TransactionResponse {
	res := make([]TransactionResponse, len(entries))
	for i, e := range entries {
		res[i] = TransactionResponse{
			Kind:         e.Kind,
			Amount:       e.Amount,
			Counterparty: e.Counterparty,
			Timestamp:    e.Timestamp,
			Description:  e.Description(),
		}
	}
	return res
}

// TransactionHistoryResponse wraps an account's ordered history.
type TransactionHistoryResponse struct {
	AccountNumber int64                 `json:"accountNumber"`
	Transactions  []TransactionResponse `json:"transactions"`
}
