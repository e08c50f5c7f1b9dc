package ports

import "github.com/pragma/auth-service/internal/core/domain"

// PasswordHasher hashes and verifies plaintext passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(password, hash string) bool
}

// TokenValidator inspects access tokens without any store access.
type TokenValidator interface {
	// IsValid reports whether the token has a valid signature and has not expired.
	IsValid(token string) bool
	// Claim returns the named claim as a string. ok is false when the token is
	// invalid or the claim is absent.
	Claim(token, name string) (value string, ok bool)
}

// TokenProvider issues and inspects access tokens.
type TokenProvider interface {
	TokenValidator
	Issue(user *domain.User, role domain.RoleType) (string, error)
}
