package domain

import (
	"errors"
	"time"
)

// ErrInvalidCredentials is returned when the owner passphrase does not
// match its configured hash.
var ErrInvalidCredentials = errors.New("invalid credentials")

// PassphraseHasher verifies the owner access passphrase against its
// configured hash. Implementations may use bcrypt, argon2, etc.
type PassphraseHasher interface {
	Hash(passphrase string) (string, error)
	Compare(hash, passphrase string) error
}

// TokenIssuer creates signed session tokens for the tracker owner.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier validates a session token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthService authenticates the owner passphrase and issues a token.
type AuthService interface {
	Login(passphrase string) (string, error)
}
