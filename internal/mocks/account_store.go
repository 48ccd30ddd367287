package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/sessionvault/internal/model"
)

// AccountStore is a mock implementation of model.AccountStore.
type AccountStore struct {
	mock.Mock
}

func (m *AccountStore) Create(ctx context.Context, account model.Account) (bool, error) {
	args := m.Called(ctx, account)
	return args.Bool(0), args.Error(1)
}

func (m *AccountStore) Get(ctx context.Context, username string) (model.Account, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *AccountStore) Update(ctx context.Context, account model.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
