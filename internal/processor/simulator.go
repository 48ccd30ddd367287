package processor

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dtroode/sessionvault/internal/model"
)

// Simulator stands in for the external payment processor: it answers after a
// fixed delay with a coin-flip outcome. Results are opaque and
// non-retryable, matching the real collaborator's contract.
type Simulator struct {
	delay       time.Duration
	successRate float64
}

var _ model.PaymentProcessor = (*Simulator)(nil)

func NewSimulator(delay time.Duration, successRate float64) *Simulator {
	return &Simulator{
		delay:       delay,
		successRate: successRate,
	}
}

// Process waits out the simulated processing delay, honoring context
// cancellation, then returns the outcome record.
func (s *Simulator) Process(ctx context.Context, amount float64, currency string) (model.PaymentResult, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return model.PaymentResult{}, ctx.Err()
	case <-timer.C:
	}

	success := rand.Float64() < s.successRate

	result := model.PaymentResult{
		Success:       success,
		TransactionID: newTransactionID(),
		Timestamp:     time.Now(),
		Amount:        amount,
		Currency:      currency,
	}
	if success {
		result.Status = model.PaymentCompleted
		result.Message = "Payment processed successfully"
	} else {
		result.Status = model.PaymentFailed
		result.Message = "Payment processing failed"
	}

	return result, nil
}

const txnAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func newTransactionID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = txnAlphabet[rand.IntN(len(txnAlphabet))]
	}
	return fmt.Sprintf("TXN_%d_%s", time.Now().UnixMilli(), suffix)
}
