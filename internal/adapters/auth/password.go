package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"conftrack/internal/domain"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PassphraseHasher that pre-hashes the passphrase
// with SHA256 before bcrypt, sidestepping bcrypt's 72-byte input limit.
func NewBcryptHasher(cost int) domain.PassphraseHasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(passphrase string) (string, error) {
	sum := sha256.Sum256([]byte(passphrase))
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(sum[:])), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passphrase: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, passphrase string) error {
	sum := sha256.Sum256([]byte(passphrase))
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(hex.EncodeToString(sum[:])))
}
