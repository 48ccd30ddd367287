package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/dtroode/sessionvault/internal/model"
)

// Codec encrypts and decrypts opaque byte payloads with a static,
// process-wide AES-GCM key. The envelope it produces is the random nonce
// followed by the ciphertext. A Codec is stateless and safe for concurrent
// use.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec creates a Codec from a raw AES key. The key must be 16, 24, or
// 32 bytes (32 for AES-256).
func NewCodec(key []byte) (*Codec, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Codec{aead: aead}, nil
}

// Encrypt seals the plaintext under a fresh random nonce and returns the
// envelope nonce||ciphertext.
func (c *Codec) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens an envelope produced by Encrypt. It fails with
// model.ErrDecryption when the envelope is truncated, tampered with, or was
// sealed under a different key. Callers must treat the record as unusable
// and not retry.
func (c *Codec) Decrypt(envelope []byte) ([]byte, error) {
	if len(envelope) < c.aead.NonceSize() {
		return nil, model.ErrDecryption
	}

	nonce, ciphertext := envelope[:c.aead.NonceSize()], envelope[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, model.ErrDecryption
	}

	return plaintext, nil
}
