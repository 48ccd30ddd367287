package model

import (
	"context"
	"time"
)

// AccountStore defines persistence operations for user accounts.
type AccountStore interface {
	// Create writes the account only if the username is not taken and
	// reports whether the write happened.
	Create(ctx context.Context, account Account) (bool, error)
	Get(ctx context.Context, username string) (Account, error)
	Update(ctx context.Context, account Account) error
}

// Account represents a stored user account. The password hash never leaves
// the registry; callers receive a sanitized AuthenticatedUser instead.
type Account struct {
	Username     string     `json:"username"`
	Email        string     `json:"email,omitempty"`
	PasswordHash string     `json:"password_hash"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// AuthenticatedUser is the projection of an account safe to hand to callers
// and to embed in session records.
type AuthenticatedUser struct {
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Sanitized strips credential material from the account.
func (a Account) Sanitized() AuthenticatedUser {
	return AuthenticatedUser{
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		LastLogin: a.LastLogin,
	}
}
