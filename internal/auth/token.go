// Package auth issues and verifies the HS256 bearer tokens that identify admins.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers bad signatures, expired tokens, wrong algorithms and
// tokens without an admin identifier.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified content of an admin token.
type Claims struct {
	AdminID   string
	Email     string
	ExpiresAt time.Time
}

// IssueToken creates a signed JWT for the given admin.
func IssueToken(secret, adminID, email string, ttl time.Duration) (string, error) {
	if adminID == "" {
		return "", errors.New("admin id is required")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": adminID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if email != "" {
		claims["email"] = email
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies tokenString against secret and extracts the admin claims.
func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	adminID := claimString(mc, "sub", "adminId", "id")
	if adminID == "" {
		return nil, fmt.Errorf("%w: missing admin id", ErrInvalidToken)
	}

	c := &Claims{AdminID: adminID, Email: claimString(mc, "email")}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}

// claimString returns the first non-empty claim among keys. Numeric ids from
// older tooling are rendered in decimal.
func claimString(mc jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		switch v := mc[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}
