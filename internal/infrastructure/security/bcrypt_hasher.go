package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pragma/auth-service/internal/core/domain"
)

// BcryptHasher hashes and verifies passwords using bcrypt. Callers must not log
// or persist plaintext passwords.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given bcrypt cost, clamped to the
// range bcrypt accepts. A non-positive cost selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash produces a bcrypt hash suitable for storage. Passwords longer than 72
// bytes are rejected as invalid input.
func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password exceeds 72 bytes", domain.ErrInvalidInput)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Matches compares password against hash in constant time. A malformed hash
// never matches.
func (h *BcryptHasher) Matches(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
