package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/sessionvault/internal/crypto"
	"github.com/dtroode/sessionvault/internal/model"
)

const (
	sessionKeyPrefix = "token:"
	// Every write renews the full window, which is what makes the session
	// expiration sliding.
	sessionTTL = 2 * time.Hour
)

var _ model.SessionStore = (*SessionRepository)(nil)

// SessionRepository stores encrypted authentication session records keyed by
// session id.
type SessionRepository struct {
	kv    model.KV
	codec *crypto.Codec
}

func NewSessionRepository(kv model.KV, codec *crypto.Codec) *SessionRepository {
	return &SessionRepository{kv: kv, codec: codec}
}

func (r *SessionRepository) Create(ctx context.Context, session model.AuthSession) error {
	return r.write(ctx, session)
}

func (r *SessionRepository) Get(ctx context.Context, id string) (model.AuthSession, error) {
	envelope, err := r.kv.Get(ctx, sessionKeyPrefix+id)
	if err != nil {
		return model.AuthSession{}, err
	}

	var session model.AuthSession
	if err := openRecord(r.codec, envelope, &session); err != nil {
		return model.AuthSession{}, err
	}

	return session, nil
}

func (r *SessionRepository) Update(ctx context.Context, session model.AuthSession) error {
	return r.write(ctx, session)
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.kv.Del(ctx, sessionKeyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) write(ctx context.Context, session model.AuthSession) error {
	envelope, err := sealRecord(r.codec, session)
	if err != nil {
		return fmt.Errorf("failed to seal session: %w", err)
	}

	if err := r.kv.Set(ctx, sessionKeyPrefix+session.ID, envelope, sessionTTL); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}
