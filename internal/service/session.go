package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/sessionvault/internal/logger"
	"github.com/dtroode/sessionvault/internal/model"
)

// Session manages authentication sessions: server-side records bound to
// issued tokens. A session is valid only while its record exists in the
// store and the token stored in that record still verifies.
type Session struct {
	sessions model.SessionStore
	tokens   model.TokenManager
	logger   *logger.Logger
}

func NewSession(sessions model.SessionStore, tokens model.TokenManager, logger *logger.Logger) *Session {
	return &Session{
		sessions: sessions,
		tokens:   tokens,
		logger:   logger.Component("session"),
	}
}

// Start generates a session id, issues a token bound to it and writes the
// encrypted session record. It returns the session id and the token.
func (s *Session) Start(ctx context.Context, user model.AuthenticatedUser) (string, string, error) {
	sessionID := uuid.NewString()

	tokenString, err := s.tokens.Issue(user.Username, sessionID, user.Role)
	if err != nil {
		s.logger.Error("failed to issue token", "username", user.Username, "error", err.Error())
		return "", "", fmt.Errorf("failed to issue token: %w", err)
	}

	now := time.Now()
	session := model.AuthSession{
		ID:           sessionID,
		Username:     user.Username,
		User:         user,
		Token:        tokenString,
		CreatedAt:    now,
		LastActivity: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("failed to create session", "session_id", sessionID, "error", err.Error())
		return "", "", fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("session started", "session_id", sessionID, "username", user.Username)

	return sessionID, tokenString, nil
}

// Validate resolves the presented token to its session record and returns
// the embedded user data, or nil when there is no valid session. The stored
// token, not the presented one, is what gets verified: only the latest token
// written to the record is honored. A record whose stored token no longer
// verifies is deleted on the spot.
//
// Every successful validation rewrites the record with a fresh TTL, giving
// the session its sliding expiration. The token's own expiry is fixed at
// issuance and is not extended here.
func (s *Session) Validate(ctx context.Context, tokenString string) (*model.AuthenticatedUser, error) {
	claims, err := s.tokens.DecodeUnverified(tokenString)
	if err != nil || claims.SessionID == "" {
		return nil, nil
	}

	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrDecryption) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if _, err := s.tokens.Verify(session.Token); err != nil {
		// Lazy cleanup: the stored token expired or no longer verifies.
		s.logger.Info("stored token no longer valid, deleting session", "session_id", session.ID)
		if err := s.sessions.Delete(ctx, session.ID); err != nil {
			s.logger.Error("failed to delete stale session", "session_id", session.ID, "error", err.Error())
		}
		return nil, nil
	}

	// Only the latest stored token is honored. A token replaced by a refresh
	// resolves the session but is no longer current, so it does not validate.
	if tokenString != session.Token {
		return nil, nil
	}

	session.LastActivity = time.Now()
	if err := s.sessions.Update(ctx, session); err != nil {
		s.logger.Error("failed to refresh session activity", "session_id", session.ID, "error", err.Error())
		return nil, fmt.Errorf("failed to refresh session activity: %w", err)
	}

	user := session.User
	return &user, nil
}

// Refresh mints a new token for an existing valid session and overwrites the
// session's stored token with it. The previous token stops validating the
// moment the record is rewritten. This is a full replacement: the new token
// gets a fresh fixed lifetime, nothing is extended.
func (s *Session) Refresh(ctx context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", model.ErrNoActiveToken
	}

	claims, err := s.tokens.DecodeUnverified(tokenString)
	if err != nil || claims.SessionID == "" {
		return "", model.ErrNoActiveToken
	}

	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrDecryption) {
			return "", model.ErrInvalidSession
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}

	newToken, err := s.tokens.Issue(session.Username, session.ID, session.User.Role)
	if err != nil {
		s.logger.Error("failed to issue replacement token", "session_id", session.ID, "error", err.Error())
		return "", fmt.Errorf("failed to issue replacement token: %w", err)
	}

	session.Token = newToken
	session.LastActivity = time.Now()
	if err := s.sessions.Update(ctx, session); err != nil {
		s.logger.Error("failed to store replacement token", "session_id", session.ID, "error", err.Error())
		return "", fmt.Errorf("failed to store replacement token: %w", err)
	}

	s.logger.Info("token refreshed", "session_id", session.ID)

	return newToken, nil
}

// End deletes the session record. Deleting an absent session is not an
// error.
func (s *Session) End(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("failed to end session", "session_id", sessionID, "error", err.Error())
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.logger.Info("session ended", "session_id", sessionID)

	return nil
}
