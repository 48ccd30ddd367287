package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/sessionvault/internal/crypto"
	"github.com/dtroode/sessionvault/internal/logger"
	"github.com/dtroode/sessionvault/internal/model"
)

const minPasswordLength = 6

// Account creates and authenticates user accounts.
type Account struct {
	accounts model.AccountStore
	logger   *logger.Logger
}

func NewAccount(accounts model.AccountStore, logger *logger.Logger) *Account {
	return &Account{
		accounts: accounts,
		logger:   logger.Component("account"),
	}
}

// Register validates input, hashes the password and creates the account.
// Uniqueness is enforced atomically by the store's set-if-absent write, so
// two concurrent registrations for the same username cannot both win.
func (a *Account) Register(ctx context.Context, username, password, email string) (model.AuthenticatedUser, error) {
	if username == "" || password == "" {
		return model.AuthenticatedUser{}, fmt.Errorf("%w: username and password are required", model.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return model.AuthenticatedUser{}, fmt.Errorf("%w: password must be at least %d characters long", model.ErrValidation, minPasswordLength)
	}

	digest, err := crypto.HashPassword(password)
	if err != nil {
		a.logger.Error("failed to hash password", "username", username, "error", err.Error())
		return model.AuthenticatedUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account := model.Account{
		Username:     username,
		Email:        email,
		PasswordHash: digest,
		Role:         "user",
		CreatedAt:    time.Now(),
	}

	created, err := a.accounts.Create(ctx, account)
	if err != nil {
		a.logger.Error("failed to create account", "username", username, "error", err.Error())
		return model.AuthenticatedUser{}, fmt.Errorf("failed to create account: %w", err)
	}
	if !created {
		a.logger.Info("username already taken", "username", username)
		return model.AuthenticatedUser{}, model.ErrUsernameTaken
	}

	a.logger.Info("account created", "username", username)

	return account.Sanitized(), nil
}

// Authenticate verifies the credentials, updates the last-login timestamp
// and returns a sanitized projection. Unknown username and wrong password
// are indistinguishable to the caller.
func (a *Account) Authenticate(ctx context.Context, username, password string) (model.AuthenticatedUser, error) {
	account, err := a.accounts.Get(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrDecryption) {
			a.logger.Info("authentication failed", "username", username)
			return model.AuthenticatedUser{}, model.ErrInvalidCredentials
		}
		a.logger.Error("failed to load account", "username", username, "error", err.Error())
		return model.AuthenticatedUser{}, fmt.Errorf("failed to load account: %w", err)
	}

	if !crypto.CheckPassword(account.PasswordHash, password) {
		a.logger.Info("authentication failed", "username", username)
		return model.AuthenticatedUser{}, model.ErrInvalidCredentials
	}

	now := time.Now()
	account.LastLogin = &now
	if err := a.accounts.Update(ctx, account); err != nil {
		a.logger.Error("failed to update last login", "username", username, "error", err.Error())
		return model.AuthenticatedUser{}, fmt.Errorf("failed to update last login: %w", err)
	}

	a.logger.Info("authentication succeeded", "username", username)

	return account.Sanitized(), nil
}

// Lookup returns the sanitized account projection without side effects.
func (a *Account) Lookup(ctx context.Context, username string) (model.AuthenticatedUser, error) {
	account, err := a.accounts.Get(ctx, username)
	if err != nil {
		return model.AuthenticatedUser{}, err
	}

	return account.Sanitized(), nil
}
