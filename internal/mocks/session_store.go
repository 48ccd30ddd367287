package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/sessionvault/internal/model"
)

// SessionStore is a mock implementation of model.SessionStore.
type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Create(ctx context.Context, session model.AuthSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionStore) Get(ctx context.Context, id string) (model.AuthSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.AuthSession), args.Error(1)
}

func (m *SessionStore) Update(ctx context.Context, session model.AuthSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
