package dto

import "github.com/shopspring/decimal"

// SetEnabledRequest toggles a feature flag. Pointer so that an explicit
// false survives the required check.
type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// BankSummaryResponse carries the ledger-wide aggregates for the admin view.
type BankSummaryResponse struct {
	TotalBalance       decimal.Decimal `json:"totalBalance"`
	TotalLoanAmount    decimal.Decimal `json:"totalLoanAmount"`
	LoanFeatureEnabled bool            `json:"loanFeatureEnabled"`
}
