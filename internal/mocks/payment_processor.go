package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/sessionvault/internal/model"
)

// PaymentProcessor is a mock implementation of model.PaymentProcessor.
type PaymentProcessor struct {
	mock.Mock
}

func (m *PaymentProcessor) Process(ctx context.Context, amount float64, currency string) (model.PaymentResult, error) {
	args := m.Called(ctx, amount, currency)
	return args.Get(0).(model.PaymentResult), args.Error(1)
}
