package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a single entry in an account's audit trail.
type TransactionKind string

const (
	Deposit       TransactionKind = "DEPOSIT"
	Withdrawal    TransactionKind = "WITHDRAWAL"
	TransferOut   TransactionKind = "TRANSFER_OUT"
	TransferIn    TransactionKind = "TRANSFER_IN"
	LoanTaken     TransactionKind = "LOAN"
	LoanRepayment TransactionKind = "LOAN_REPAYMENT"
)

// TransactionEntry is one record in an account's transaction history.
// Counterparty is only set for transfers (the other account's number).
type TransactionEntry struct {
	Kind         TransactionKind `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Counterparty int64           `json:"counterparty,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Description renders the entry as the classic human-readable statement line.
// The presentation layer may use these verbatim or format the fields itself.
func (e TransactionEntry) Description() string {
	switch e.Kind {
	case Deposit:
		return fmt.Sprintf("Deposited %s", e.Amount)
	case Withdrawal:
		return fmt.Sprintf("Withdrew %s", e.Amount)
	case TransferOut:
		return fmt.Sprintf("Transferred %s to account %d", e.Amount, e.Counterparty)
	case TransferIn:
		return fmt.Sprintf("Received %s from account %d", e.Amount, e.Counterparty)
	case LoanTaken:
		return fmt.Sprintf("Loan of %s taken", e.Amount)
	case LoanRepayment:
		return fmt.Sprintf("Repaid loan of %s", e.Amount)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.Amount)
}
