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

// Payment manages payment sessions and the payment cache. Status transitions
// are caller-driven; the manager does not enforce an ordering between them.
// Its one invariant is card masking: raw card details never reach the store.
type Payment struct {
	store     model.PaymentStore
	processor model.PaymentProcessor
	logger    *logger.Logger
}

func NewPayment(store model.PaymentStore, processor model.PaymentProcessor, logger *logger.Logger) *Payment {
	return &Payment{
		store:     store,
		processor: processor,
		logger:    logger.Component("payment"),
	}
}

// StatusView is the projection of a payment session safe to return to
// callers: everything except the card mask.
type StatusView struct {
	Amount      float64              `json:"amount"`
	Currency    string               `json:"currency"`
	Description string               `json:"description"`
	Status      model.PaymentStatus  `json:"status"`
	CreatedAt   time.Time            `json:"timestamp"`
	Result      *model.PaymentResult `json:"result,omitempty"`
}

// Initialize creates a pending payment session and returns its id.
func (p *Payment) Initialize(ctx context.Context, amount float64, currency, description string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", model.ErrValidation)
	}
	if currency == "" {
		return "", fmt.Errorf("%w: currency is required", model.ErrValidation)
	}
	if description == "" {
		description = "Payment"
	}

	session := model.PaymentSession{
		ID:          uuid.NewString(),
		Amount:      amount,
		Currency:    currency,
		Description: description,
		Status:      model.PaymentPending,
		CreatedAt:   time.Now(),
	}

	if err := p.store.CreateSession(ctx, session); err != nil {
		p.logger.Error("failed to create payment session", "error", err.Error())
		return "", fmt.Errorf("failed to create payment session: %w", err)
	}

	p.logger.Info("payment session initialized", "session_id", session.ID, "currency", session.Currency)

	return session.ID, nil
}

// Process attaches masked card details to the session, caches the record
// under a new payment id, hands the payment to the external processor and
// merges the result back into the session. The raw card input is consumed in
// memory only.
func (p *Payment) Process(ctx context.Context, sessionID string, card model.CardInput) (string, model.PaymentResult, error) {
	if card.Number == "" || card.CVV == "" || card.HolderName == "" || card.ExpiryMonth == "" || card.ExpiryYear == "" {
		return "", model.PaymentResult{}, fmt.Errorf("%w: all payment details are required", model.ErrValidation)
	}

	session, err := p.store.GetSession(ctx, sessionID)
	if err != nil {
		return "", model.PaymentResult{}, p.asSessionError(err, sessionID)
	}

	masked := card.Mask()
	session.Card = &masked
	session.Status = model.PaymentProcessing

	paymentID := fmt.Sprintf("PAY_%d", time.Now().UnixMilli())
	if err := p.store.CachePayment(ctx, paymentID, session); err != nil {
		p.logger.Error("failed to cache payment", "payment_id", paymentID, "error", err.Error())
		return "", model.PaymentResult{}, fmt.Errorf("failed to cache payment: %w", err)
	}

	result, err := p.processor.Process(ctx, session.Amount, session.Currency)
	if err != nil {
		p.logger.Error("processor failure", "payment_id", paymentID, "error", err.Error())
		return "", model.PaymentResult{}, fmt.Errorf("processor failure: %w", err)
	}

	session.PaymentID = paymentID
	session.Result = &result
	if result.Success {
		session.Status = model.PaymentCompleted
	} else {
		session.Status = model.PaymentFailed
	}

	if err := p.store.UpdateSession(ctx, session); err != nil {
		p.logger.Error("failed to store payment result", "session_id", sessionID, "error", err.Error())
		return "", model.PaymentResult{}, fmt.Errorf("failed to store payment result: %w", err)
	}

	p.logger.Info("payment processed",
		"session_id", sessionID,
		"payment_id", paymentID,
		"status", session.Status)

	return paymentID, result, nil
}

// Status returns the safe projection of a payment session.
func (p *Payment) Status(ctx context.Context, sessionID string) (StatusView, error) {
	session, err := p.store.GetSession(ctx, sessionID)
	if err != nil {
		return StatusView{}, p.asSessionError(err, sessionID)
	}

	return StatusView{
		Amount:      session.Amount,
		Currency:    session.Currency,
		Description: session.Description,
		Status:      session.Status,
		CreatedAt:   session.CreatedAt,
		Result:      session.Result,
	}, nil
}

// Clear deletes the payment session. Clearing an absent session is not an
// error.
func (p *Payment) Clear(ctx context.Context, sessionID string) error {
	if err := p.store.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear payment session: %w", err)
	}
	return nil
}

// Cached returns the payment record stored under the payment id, the
// separate lookup path over the cache namespace.
func (p *Payment) Cached(ctx context.Context, paymentID string) (model.PaymentSession, error) {
	session, err := p.store.CachedPayment(ctx, paymentID)
	if err != nil {
		return model.PaymentSession{}, err
	}
	return session, nil
}

func (p *Payment) asSessionError(err error, sessionID string) error {
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrDecryption) {
		return model.ErrSessionNotFound
	}
	p.logger.Error("failed to load payment session", "session_id", sessionID, "error", err.Error())
	return fmt.Errorf("failed to load payment session: %w", err)
}
