package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/sessionvault/internal/model"
	"github.com/dtroode/sessionvault/internal/testutil"
)

func TestSessionRepository_Roundtrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(testutil.NewMemKV(), newCodec(t))

	session := model.AuthSession{
		ID:       "sid-1",
		Username: "alice",
		User:     model.AuthenticatedUser{Username: "alice", Role: "user"},
		Token:    "signed-token",
	}
	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, session.Token, got.Token)
	assert.Equal(t, "alice", got.User.Username)
}

func TestSessionRepository_WriteRenewsTTL(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMemKV()
	repo := NewSessionRepository(kv, newCodec(t))

	session := model.AuthSession{ID: "sid-1", Username: "alice"}
	require.NoError(t, repo.Create(ctx, session))

	kv.Advance(90 * time.Minute)
	require.NoError(t, repo.Update(ctx, session))

	// The rewrite reset the window.
	ttl, ok := kv.TTL("token:sid-1")
	require.True(t, ok)
	assert.Equal(t, sessionTTL, ttl)
}

func TestSessionRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMemKV()
	repo := NewSessionRepository(kv, newCodec(t))

	require.NoError(t, repo.Create(ctx, model.AuthSession{ID: "sid-1"}))

	kv.Advance(sessionTTL + time.Minute)

	_, err := repo.Get(ctx, "sid-1")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(testutil.NewMemKV(), newCodec(t))

	require.NoError(t, repo.Create(ctx, model.AuthSession{ID: "sid-1"}))
	require.NoError(t, repo.Delete(ctx, "sid-1"))

	_, err := repo.Get(ctx, "sid-1")
	require.ErrorIs(t, err, model.ErrNotFound)

	// Idempotent.
	require.NoError(t, repo.Delete(ctx, "sid-1"))
}
