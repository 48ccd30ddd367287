package redis

import (
	"context"
	"fmt"

	"github.com/dtroode/sessionvault/internal/crypto"
	"github.com/dtroode/sessionvault/internal/model"
)

// Account records are persistent: no TTL.
const accountKeyPrefix = "user:"

var _ model.AccountStore = (*AccountRepository)(nil)

// AccountRepository stores encrypted account records keyed by username.
type AccountRepository struct {
	kv    model.KV
	codec *crypto.Codec
}

func NewAccountRepository(kv model.KV, codec *crypto.Codec) *AccountRepository {
	return &AccountRepository{kv: kv, codec: codec}
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (bool, error) {
	envelope, err := sealRecord(r.codec, account)
	if err != nil {
		return false, fmt.Errorf("failed to seal account: %w", err)
	}

	created, err := r.kv.SetNX(ctx, accountKeyPrefix+account.Username, envelope, 0)
	if err != nil {
		return false, fmt.Errorf("failed to create account: %w", err)
	}

	return created, nil
}

func (r *AccountRepository) Get(ctx context.Context, username string) (model.Account, error) {
	envelope, err := r.kv.Get(ctx, accountKeyPrefix+username)
	if err != nil {
		return model.Account{}, err
	}

	var account model.Account
	if err := openRecord(r.codec, envelope, &account); err != nil {
		return model.Account{}, err
	}

	return account, nil
}

func (r *AccountRepository) Update(ctx context.Context, account model.Account) error {
	envelope, err := sealRecord(r.codec, account)
	if err != nil {
		return fmt.Errorf("failed to seal account: %w", err)
	}

	if err := r.kv.Set(ctx, accountKeyPrefix+account.Username, envelope, 0); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return nil
}
