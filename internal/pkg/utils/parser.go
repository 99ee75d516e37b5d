package utils

import (
	"meditrack-client/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type TokenClaims struct {
	Subject   string
	Type      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ParseTokenClaims decodes the claims of a JWT access token without verifying
// its signature. The server remains the only authority on token validity.
func ParseTokenClaims(tokenString string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, exceptions.ErrParseToken(err)
	}

	result := &TokenClaims{}
	switch sub := claims["sub"].(type) {
	case string:
		result.Subject = sub
	case float64:
		result.Subject = formatNumericClaim(sub)
	}
	if tokenType, ok := claims["type"].(string); ok {
		result.Type = tokenType
	}
	if iat, ok := claims["iat"].(float64); ok {
		result.IssuedAt = time.Unix(int64(iat), 0).UTC()
	}
	if exp, ok := claims["exp"].(float64); ok {
		result.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return result, nil
}

// IsExpired reports whether the claims carry an expiry that is not after now.
func (c *TokenClaims) IsExpired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !c.ExpiresAt.After(now)
}
