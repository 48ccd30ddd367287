package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/sessionvault/internal/model"
)

// MemKV is an in-memory model.KV with TTL support and a controllable clock,
// used to exercise expiry without waiting on wall time.
type MemKV struct {
	mu    sync.Mutex
	now   time.Time
	items map[string]memItem
}

type memItem struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

var _ model.KV = (*MemKV)(nil)

func NewMemKV() *MemKV {
	return &MemKV{
		now:   time.Now(),
		items: make(map[string]memItem),
	}
}

// Advance moves the fake clock forward, expiring records along the way.
func (m *MemKV) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// TTL reports the remaining lifetime of a key; zero means no expiry set.
func (m *MemKV) TTL(key string) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok {
		return 0, false
	}
	if item.expiresAt.IsZero() {
		return 0, true
	}
	return item.expiresAt.Sub(m.now), true
}

func (m *MemKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok || m.expired(item) {
		delete(m.items, key)
		return nil, model.ErrNotFound
	}

	return append([]byte(nil), item.value...), nil
}

func (m *MemKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = m.newItem(value, ttl)
	return nil
}

func (m *MemKV) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if item, ok := m.items[key]; ok && !m.expired(item) {
		return false, nil
	}

	m.items[key] = m.newItem(value, ttl)
	return true, nil
}

func (m *MemKV) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

func (m *MemKV) Ping(ctx context.Context) error {
	return nil
}

func (m *MemKV) newItem(value []byte, ttl time.Duration) memItem {
	item := memItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		item.expiresAt = m.now.Add(ttl)
	}
	return item
}

func (m *MemKV) expired(item memItem) bool {
	return !item.expiresAt.IsZero() && !m.now.Before(item.expiresAt)
}
