package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rabi993/banking-system/internal/core/domain"
)

func TestTransactionEntry_Description(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.TransactionEntry
		want  string
	}{
		{
			name:  "deposit",
			entry: domain.TransactionEntry{Kind: domain.Deposit, Amount: decimal.NewFromInt(100)},
			want:  "Deposited 100",
		},
		{
			name:  "withdrawal",
			entry: domain.TransactionEntry{Kind: domain.Withdrawal, Amount: decimal.NewFromInt(50)},
			want:  "Withdrew 50",
		},
		{
			name: "transfer out names the target account",
			entry: domain.TransactionEntry{
				Kind:         domain.TransferOut,
				Amount:       decimal.NewFromInt(25),
				Counterparty: 12345678,
			},
			want: "Transferred 25 to account 12345678",
		},
		{
			name: "transfer in names the source account",
			entry: domain.TransactionEntry{
				Kind:         domain.TransferIn,
				Amount:       decimal.NewFromInt(25),
				Counterparty: 87654321,
			},
			want: "Received 25 from account 87654321",
		},
		{
			name:  "loan",
			entry: domain.TransactionEntry{Kind: domain.LoanTaken, Amount: decimal.NewFromInt(500)},
			want:  "Loan of 500 taken",
		},
		{
			name:  "loan repayment",
			entry: domain.TransactionEntry{Kind: domain.LoanRepayment, Amount: decimal.NewFromInt(500)},
			want:  "Repaid loan of 500",
		},
		{
			name:  "fractional amount keeps its exact form",
			entry: domain.TransactionEntry{Kind: domain.Deposit, Amount: decimal.RequireFromString("10.50")},
			want:  "Deposited 10.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Description())
		})
	}
}

func TestAccountType_IsValid(t *testing.T) {
	assert.True(t, domain.Savings.IsValid())
	assert.True(t, domain.Current.IsValid())
	assert.False(t, domain.AccountType("CHECKING").IsValid())
	assert.False(t, domain.AccountType("").IsValid())
}
