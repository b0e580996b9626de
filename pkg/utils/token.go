package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo holds the claims we care about from a remote-issued access token.
// The gateway never verifies signatures: the token is minted and validated by
// the remote API; locally we only inspect it for display and expiry pruning.
type TokenInfo struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// InspectToken decodes a JWT without verifying its signature and extracts
// the subject, email and expiry claims.
func InspectToken(tokenString string) (*TokenInfo, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("malformed token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		info.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, nil
}

// IsTokenExpired reports whether the token carries an exp claim in the past.
// Tokens without an exp claim are treated as live; the remote API has the
// final say either way.
func IsTokenExpired(tokenString string) bool {
	info, err := InspectToken(tokenString)
	if err != nil {
		return true
	}
	if info.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(info.ExpiresAt)
}
