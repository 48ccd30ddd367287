package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/sessionvault/internal/model"
)

// PaymentStore is a mock implementation of model.PaymentStore.
type PaymentStore struct {
	mock.Mock
}

func (m *PaymentStore) CreateSession(ctx context.Context, session model.PaymentSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *PaymentStore) GetSession(ctx context.Context, id string) (model.PaymentSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.PaymentSession), args.Error(1)
}

func (m *PaymentStore) UpdateSession(ctx context.Context, session model.PaymentSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *PaymentStore) DeleteSession(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PaymentStore) CachePayment(ctx context.Context, paymentID string, session model.PaymentSession) error {
	args := m.Called(ctx, paymentID, session)
	return args.Error(0)
}

func (m *PaymentStore) CachedPayment(ctx context.Context, paymentID string) (model.PaymentSession, error) {
	args := m.Called(ctx, paymentID)
	return args.Get(0).(model.PaymentSession), args.Error(1)
}
