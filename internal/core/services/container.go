package services

import (
	portssvc "github.com/rabi993/banking-system/internal/core/ports/services"
)

// NewServiceContainer wires one ledger and both role facades over it.
func NewServiceContainer(verifier CredentialVerifier) *portssvc.ServiceContainer {
	ledger := NewLedgerService()
	return &portssvc.ServiceContainer{
		User:  NewUserService(ledger),
		Admin: NewAdminService(ledger, verifier),
	}
}
