package model

import (
	"context"
	"time"
)

// KV defines the single shared key-value store all record repositories are
// built on. Per-key operations are atomic; ttl of zero means no expiry.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// SetNX writes the value only when the key is absent and reports whether
	// the write happened. This is the atomic set-if-absent primitive used to
	// enforce uniqueness without a check-then-write race.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
