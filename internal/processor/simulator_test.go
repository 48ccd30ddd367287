package processor

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dtroode/sessionvault/internal/model"
)

func TestSimulator_AlwaysSucceeds(t *testing.T) {
	s := NewSimulator(0, 1.0)

	result, err := s.Process(context.Background(), 49.99, "USD")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, model.PaymentCompleted, result.Status)
	require.Equal(t, 49.99, result.Amount)
	require.Equal(t, "USD", result.Currency)
	require.True(t, strings.HasPrefix(result.TransactionID, "TXN_"))
}

func TestSimulator_AlwaysFails(t *testing.T) {
	s := NewSimulator(0, 0.0)

	result, err := s.Process(context.Background(), 10, "EUR")
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, model.PaymentFailed, result.Status)
}

func TestSimulator_ContextCancelled(t *testing.T) {
	s := NewSimulator(time.Minute, 1.0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Process(ctx, 10, "USD")
	require.ErrorIs(t, err, context.Canceled)
}

func TestSimulator_TransactionIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for range 32 {
		id := newTransactionID()
		require.False(t, seen[id])
		seen[id] = true
	}
}
