package model

import "errors"

var (
	// ErrNotFound is returned by stores when a key does not exist or has expired.
	ErrNotFound = errors.New("record not found")

	// ErrValidation covers bad input rejected before any store access.
	ErrValidation = errors.New("validation failed")

	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is deliberately the same for an unknown username
	// and a wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrDecryption means a stored record is unusable: the envelope is
	// malformed, truncated, or was sealed with a different key. Callers must
	// not retry.
	ErrDecryption = errors.New("record cannot be decrypted")

	ErrTokenInvalid = errors.New("token is invalid")

	ErrNoActiveToken  = errors.New("no active token")
	ErrInvalidSession = errors.New("invalid session")

	ErrSessionNotFound = errors.New("session not found")

	// ErrStoreUnavailable indicates an infrastructure failure talking to the
	// store. No retries are attempted at this layer.
	ErrStoreUnavailable = errors.New("store unavailable")
)
