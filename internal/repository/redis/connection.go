package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/sessionvault/internal/config"
	"github.com/dtroode/sessionvault/internal/model"
)

// Connection wraps the shared Redis client. It is the one store connection
// for the process, created at startup and injected into the repositories.
type Connection struct {
	client *redis.Client
}

var _ model.KV = (*Connection)(nil)

// NewConnection opens the client and verifies connectivity with a ping.
func NewConnection(ctx context.Context, cfg config.Redis) (*Connection, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Connection{client: client}, nil
}

func (c *Connection) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%w: get %s: %v", model.ErrStoreUnavailable, key, err)
	}
	return value, nil
}

func (c *Connection) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", model.ErrStoreUnavailable, key, err)
	}
	return nil
}

func (c *Connection) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	created, err := c.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: setnx %s: %v", model.ErrStoreUnavailable, key, err)
	}
	return created, nil
}

func (c *Connection) Del(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: del %s: %v", model.ErrStoreUnavailable, key, err)
	}
	return nil
}

func (c *Connection) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: ping: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}

func (c *Connection) Close() error {
	return c.client.Close()
}
