package model

import (
	"context"
	"time"
)

// PaymentStore persists payment session records and the shorter-lived
// payment cache. The two namespaces share a shape but are keyed and expired
// independently.
type PaymentStore interface {
	CreateSession(ctx context.Context, session PaymentSession) error
	GetSession(ctx context.Context, id string) (PaymentSession, error)
	UpdateSession(ctx context.Context, session PaymentSession) error
	DeleteSession(ctx context.Context, id string) error

	CachePayment(ctx context.Context, paymentID string, session PaymentSession) error
	CachedPayment(ctx context.Context, paymentID string) (PaymentSession, error)
}

// PaymentStatus values are caller-driven; the store does not enforce an
// ordering between them.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
)

// PaymentSession is an ephemeral transactional record.
type PaymentSession struct {
	ID          string         `json:"id"`
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	Description string         `json:"description"`
	Status      PaymentStatus  `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	Card        *MaskedCard    `json:"card,omitempty"`
	PaymentID   string         `json:"payment_id,omitempty"`
	Result      *PaymentResult `json:"result,omitempty"`
}

// CardInput carries raw card details submitted by a caller. It is consumed
// in memory only; the full number and CVV are never persisted.
type CardInput struct {
	Number      string
	ExpiryMonth string
	ExpiryYear  string
	CVV         string
	HolderName  string
}

// MaskedCard is the only card representation that may be stored.
type MaskedCard struct {
	Last4       string `json:"last4"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	HolderName  string `json:"holder_name"`
}

// Mask reduces the card to its storable form, keeping the last four digits
// of the number and dropping the CVV entirely.
func (c CardInput) Mask() MaskedCard {
	last4 := c.Number
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	return MaskedCard{
		Last4:       last4,
		ExpiryMonth: c.ExpiryMonth,
		ExpiryYear:  c.ExpiryYear,
		HolderName:  c.HolderName,
	}
}

// PaymentResult is the record returned by the external payment processor,
// treated as opaque and non-retryable.
type PaymentResult struct {
	Success       bool          `json:"success"`
	TransactionID string        `json:"transaction_id"`
	Timestamp     time.Time     `json:"timestamp"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	Message       string        `json:"message"`
}

// PaymentProcessor is the consumed external collaborator contract.
type PaymentProcessor interface {
	Process(ctx context.Context, amount float64, currency string) (PaymentResult, error)
}
