package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims extends the registered JWT claims with the session's role.
// Subject carries the account number for user sessions and the admin name
// for admin sessions.
type SessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// GenerateSessionToken mints a signed HS256 session token.
func GenerateSessionToken(subject, role, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken parses a session token string and validates its signature
// and standard claims. It returns the claims if the token is valid.
func ParseSessionToken(tokenString string, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Don't forget to validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err // Includes expiry and signature errors
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
