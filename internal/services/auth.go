package services

import (
	"fmt"
	"time"

	"conftrack/internal/domain"
)

type authService struct {
	hasher         domain.PassphraseHasher
	issuer         domain.TokenIssuer
	passphraseHash string
	tokenExpiry    time.Duration
}

// NewAuthService authenticates the owner passphrase against its configured
// hash and issues session tokens.
func NewAuthService(hasher domain.PassphraseHasher, issuer domain.TokenIssuer, passphraseHash string, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		hasher:         hasher,
		issuer:         issuer,
		passphraseHash: passphraseHash,
		tokenExpiry:    tokenExpiry,
	}
}

func (s *authService) Login(passphrase string) (string, error) {
	if err := s.hasher.Compare(s.passphraseHash, passphrase); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue("owner", s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
