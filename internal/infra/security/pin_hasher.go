package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// BcryptPINHasher implements gateway.PINHasher.
type BcryptPINHasher struct{}

func NewBcryptPINHasher() *BcryptPINHasher {
	return &BcryptPINHasher{}
}

func (h *BcryptPINHasher) Hash(pin string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash pin: %w", err)
	}
	return string(hashed), nil
}

func (h *BcryptPINHasher) Verify(hash, pin string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
}
