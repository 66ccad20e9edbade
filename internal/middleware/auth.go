package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rabi993/banking-system/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates session
// tokens and enforces the required role. For user sessions it also parses the
// account number out of the token subject and stores it in the context.
func AuthMiddleware(jwtSecret string, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid", "header", authHeader)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseSessionToken(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.Role != requiredRole {
			logger.Warn("Role not permitted for this route", "role", claims.Role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), roleKey, claims.Role)
		enrichedLogger := logger.With(slog.String("role", claims.Role))

		if claims.Role == RoleUser {
			accountNumber, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil || claims.Subject == "" {
				logger.Error("Account number (subject) missing from valid token")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
				return
			}
			ctx = context.WithValue(ctx, accountNumberKey, accountNumber)
			enrichedLogger = enrichedLogger.With(slog.Int64("account_number", accountNumber))
		}

		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
