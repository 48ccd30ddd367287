package model

import (
	"context"
	"time"
)

// SessionStore persists authentication session records. Create and Update
// both rewrite the record with a fresh TTL, which is what gives sessions
// their sliding expiration.
type SessionStore interface {
	Create(ctx context.Context, session AuthSession) error
	Get(ctx context.Context, id string) (AuthSession, error)
	Update(ctx context.Context, session AuthSession) error
	Delete(ctx context.Context, id string) error
}

// AuthSession binds an issued token to a server-side record. The record is
// valid only while it exists in the store and its stored token still
// verifies; only the latest stored token is honored.
type AuthSession struct {
	ID           string            `json:"id"`
	Username     string            `json:"username"`
	User         AuthenticatedUser `json:"user"`
	Token        string            `json:"token"`
	CreatedAt    time.Time         `json:"created_at"`
	LastActivity time.Time         `json:"last_activity"`
}
