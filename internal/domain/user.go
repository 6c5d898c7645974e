package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

type User struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Lastname       string    `json:"lastname"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Active         bool      `json:"active"`
	RoleID         int       `json:"role_id"`
	AvatarURL      *string   `json:"avatar_url"`
	LinkedAccounts []string  `json:"linked_accounts"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

type Claims struct {
	UserID        int
	UserName      string
	UserLastname  string
	UserEmail     string
	UserActive    bool
	UserRoleID    int
	UserAvatarURL *string
	UserAccounts  []string
	jwt.RegisteredClaims
}

// CanAccessAccount libera todas as contas para admin e supervisor; clientes só veem as contas vinculadas
func (c *Claims) CanAccessAccount(accountID string) bool {
	if c.UserRoleID == RoleAdmin || c.UserRoleID == RoleSupervisor {
		return true
	}
	for _, linked := range c.UserAccounts {
		if linked == accountID {
			return true
		}
	}
	return false
}
