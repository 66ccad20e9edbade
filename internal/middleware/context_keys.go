package middleware

import "context"

// contextKey is a private type for context keys defined by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey     = contextKey("logger")
	accountNumberKey = contextKey("accountNumber")
	roleKey          = contextKey("role")
)

// Session roles carried in the JWT role claim.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// GetAccountNumberFromCtx retrieves the authenticated user's account number
// from the context. It returns the number and whether it was found.
func GetAccountNumberFromCtx(ctx context.Context) (int64, bool) {
	v := ctx.Value(accountNumberKey)
	if v == nil {
		return 0, false
	}
	number, ok := v.(int64)
	return number, ok
}

// GetRoleFromCtx retrieves the session role from the context.
func GetRoleFromCtx(ctx context.Context) (string, bool) {
	v := ctx.Value(roleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
