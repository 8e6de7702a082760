package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a session JWT
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the claims carry the administrator role
func (c *TokenClaims) IsAdmin() bool {
	return c.Role == "ROLE_ADMIN"
}
