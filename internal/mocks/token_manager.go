package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/sessionvault/internal/model"
)

// TokenManager is a mock implementation of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Issue(username, sessionID, role string) (string, error) {
	args := m.Called(username, sessionID, role)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Verify(token string) (model.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.TokenClaims), args.Error(1)
}

func (m *TokenManager) DecodeUnverified(token string) (model.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.TokenClaims), args.Error(1)
}
