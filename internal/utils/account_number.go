package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Account numbers are 8-digit values, matching the historical format.
const (
	accountNumberMin = 10_000_000
	accountNumberMax = 99_999_999
)

// GenerateAccountNumber returns a cryptographically random 8-digit account
// number. Uniqueness against live accounts is the caller's responsibility.
func GenerateAccountNumber() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(accountNumberMax-accountNumberMin+1))
	if err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return accountNumberMin + n.Int64(), nil
}
