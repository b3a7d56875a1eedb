package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims issued by the cooperative's identity store.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	// DocumentNumber links the credential to a member of the cooperative.
	// Empty for back-office users (analysts, admins) with no member record.
	DocumentNumber string   `json:"document_number,omitempty"`
	Roles          []string `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role constants
const (
	RoleAffiliate = "AFFILIATE"
	RoleAnalyst   = "ANALYST"
	RoleAdmin     = "ADMIN"
)
