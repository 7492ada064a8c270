package entities

import (
	"time"

	"github.com/google/uuid"
)

// AccountRole represents account roles
type AccountRole string

const (
	AccountRoleDonor AccountRole = "donor"
	AccountRoleAdmin AccountRole = "admin"
)

// Account represents a registered account
type Account struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	PasswordHash  string      `json:"-"`
	Role          AccountRole `json:"role"`
	PhoneVerified bool        `json:"phoneVerified"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// PublicAccount is the projection of an account returned to callers.
// The password hash is never part of it.
type PublicAccount struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Phone string      `json:"phone"`
	Role  AccountRole `json:"role"`
}

// Public returns the caller-visible projection of the account
func (a *Account) Public() *PublicAccount {
	return &PublicAccount{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Phone: a.Phone,
		Role:  a.Role,
	}
}

// RegisterInput represents input for account registration
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,e164"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful register/login response
type AuthResponse struct {
	Token string         `json:"token"`
	User  *PublicAccount `json:"user"`
}
