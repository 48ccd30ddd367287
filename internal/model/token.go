package model

import "time"

// TokenManager issues and validates bearer tokens.
//
// DecodeUnverified is deliberately a separate operation from Verify: it
// performs no signature check and must only be used to extract a session id
// for a store lookup before trust is established, never to authorize
// anything.
type TokenManager interface {
	Issue(username, sessionID, role string) (string, error)
	Verify(token string) (TokenClaims, error)
	DecodeUnverified(token string) (TokenClaims, error)
}

// TokenClaims is the claim set embedded in a bearer token.
type TokenClaims struct {
	Username  string
	SessionID string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
