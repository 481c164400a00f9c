// Package auth issues and verifies the HS256 credentials used by the API
// and provides the bearer guard middleware.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// UseAccess and UseRefresh distinguish the two token kinds via the
	// token_use claim so a refresh token cannot be replayed as an access
	// token (or the other way around).
	UseAccess  = "access"
	UseRefresh = "refresh"

	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// IssueToken signs a token for the given identity with the requested use
// and lifetime.
func IssueToken(secret []byte, email, use string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email":     email,
		"token_use": use,
		"exp":       time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyToken checks signature, expiry and token_use, returning the email
// claim the token was issued for.
func VerifyToken(secret []byte, tokenStr, wantUse string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if use, _ := claims["token_use"].(string); use != wantUse {
		return "", ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
