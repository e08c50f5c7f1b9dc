package domain

import "time"

// Credential is the email/password pair submitted for authentication.
// It is never persisted.
type Credential struct {
	Email    string
	Password string
}

// AccessToken wraps a signed, time-bounded token.
type AccessToken struct {
	Token string `json:"accessToken"`
}

// Claim names embedded in access tokens.
const (
	ClaimUserID         = "userId"
	ClaimEmail          = "email"
	ClaimDocumentNumber = "documentNumber"
	ClaimName           = "name"
	ClaimRole           = "role"
	ClaimIssuedAt       = "iat"
	ClaimExpiresAt      = "exp"
)

// TokenClaims is the decoded identity carried by a valid access token.
type TokenClaims struct {
	UserID         string
	Email          string
	DocumentNumber string
	Name           string
	Role           RoleType
	IssuedAt       time.Time
	ExpiresAt      time.Time
}
