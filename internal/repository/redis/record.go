package redis

import (
	"encoding/json"
	"fmt"

	"github.com/dtroode/sessionvault/internal/crypto"
)

// Every record is JSON-marshaled and sealed before the store sees it; the
// store only ever owns the encrypted envelope.

func sealRecord(codec *crypto.Codec, v any) ([]byte, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	envelope, err := codec.Encrypt(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt record: %w", err)
	}

	return envelope, nil
}

func openRecord(codec *crypto.Codec, envelope []byte, v any) error {
	plaintext, err := codec.Decrypt(envelope)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return nil
}
