package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the kind of bank account a customer holds.
type AccountType string

const (
	Savings AccountType = "SAVINGS"
	Current AccountType = "CURRENT"
)

// IsValid reports whether the account type is one of the known variants.
func (t AccountType) IsValid() bool {
	switch t {
	case Savings, Current:
		return true
	}
	return false
}

// Account represents a customer's account within the core domain: profile,
// balance, loan state, feature flags and the audit trail of every movement.
// All mutation goes through the ledger service; the struct itself is data.
type Account struct {
	AccountNumber       int64              `json:"accountNumber"` // Unique 8-digit identifier, generated at creation
	Name                string             `json:"name"`
	Email               string             `json:"email"`
	Password            string             `json:"-"` // Compared in the clear; never serialized
	Address             string             `json:"address"`
	AccountType         AccountType        `json:"accountType"`
	Balance             decimal.Decimal    `json:"balance"`
	LoanCount           int                `json:"loanCount"`  // 0..2; a repaid loan never frees its slot
	LoanAmount          decimal.Decimal    `json:"loanAmount"` // Outstanding sum across both slots
	TransactionsEnabled bool               `json:"transactionsEnabled"`
	LoanEnabled         bool               `json:"loanEnabled"`
	History             []TransactionEntry `json:"-"` // Append-only, insertion order significant
	CreatedAt           time.Time          `json:"createdAt"`
}
