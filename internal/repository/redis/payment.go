package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/sessionvault/internal/crypto"
	"github.com/dtroode/sessionvault/internal/model"
)

// Payment sessions and the payment cache share a record shape but live in
// separate namespaces with separate, fixed-per-write TTLs.
const (
	paymentSessionPrefix = "session:"
	paymentCachePrefix   = "payment:"

	paymentSessionTTL = time.Hour
	paymentCacheTTL   = 30 * time.Minute
)

var _ model.PaymentStore = (*PaymentRepository)(nil)

// PaymentRepository stores encrypted payment records.
type PaymentRepository struct {
	kv    model.KV
	codec *crypto.Codec
}

func NewPaymentRepository(kv model.KV, codec *crypto.Codec) *PaymentRepository {
	return &PaymentRepository{kv: kv, codec: codec}
}

func (r *PaymentRepository) CreateSession(ctx context.Context, session model.PaymentSession) error {
	return r.writeSession(ctx, session)
}

func (r *PaymentRepository) GetSession(ctx context.Context, id string) (model.PaymentSession, error) {
	return r.read(ctx, paymentSessionPrefix+id)
}

func (r *PaymentRepository) UpdateSession(ctx context.Context, session model.PaymentSession) error {
	return r.writeSession(ctx, session)
}

func (r *PaymentRepository) DeleteSession(ctx context.Context, id string) error {
	if err := r.kv.Del(ctx, paymentSessionPrefix+id); err != nil {
		return fmt.Errorf("failed to delete payment session: %w", err)
	}
	return nil
}

func (r *PaymentRepository) CachePayment(ctx context.Context, paymentID string, session model.PaymentSession) error {
	envelope, err := sealRecord(r.codec, session)
	if err != nil {
		return fmt.Errorf("failed to seal payment: %w", err)
	}

	if err := r.kv.Set(ctx, paymentCachePrefix+paymentID, envelope, paymentCacheTTL); err != nil {
		return fmt.Errorf("failed to cache payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) CachedPayment(ctx context.Context, paymentID string) (model.PaymentSession, error) {
	return r.read(ctx, paymentCachePrefix+paymentID)
}

func (r *PaymentRepository) writeSession(ctx context.Context, session model.PaymentSession) error {
	envelope, err := sealRecord(r.codec, session)
	if err != nil {
		return fmt.Errorf("failed to seal payment session: %w", err)
	}

	if err := r.kv.Set(ctx, paymentSessionPrefix+session.ID, envelope, paymentSessionTTL); err != nil {
		return fmt.Errorf("failed to write payment session: %w", err)
	}

	return nil
}

func (r *PaymentRepository) read(ctx context.Context, key string) (model.PaymentSession, error) {
	envelope, err := r.kv.Get(ctx, key)
	if err != nil {
		return model.PaymentSession{}, err
	}

	var session model.PaymentSession
	if err := openRecord(r.codec, envelope, &session); err != nil {
		return model.PaymentSession{}, err
	}

	return session, nil
}
