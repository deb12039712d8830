package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims accepted by the credit service.
// Tokens are issued by the identity service; IsAdmin is honoured for
// tokens minted before role lists were introduced.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int64    `json:"user_id"`
	Roles   []string `json:"roles,omitempty"`
	IsAdmin bool     `json:"is_admin,omitempty"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	if role == RoleAdmin && c.IsAdmin {
		return true
	}
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role constants
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)
