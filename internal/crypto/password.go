package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a one-way, per-record-salted digest of the password.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether the password matches the digest. The
// comparison inside bcrypt is constant-time.
func CheckPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
