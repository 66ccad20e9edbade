// Package services defines the service facade interfaces consumed by the
// HTTP handlers. The concrete implementations live in internal/core/services.
package services

// ServiceContainer holds instances of the role-scoped application services.
// This is the main entry point for accessing service functionality and is
// what gets threaded through route registration.
type ServiceContainer struct {
	User  UserSvcFacade
	Admin AdminSvcFacade
}
