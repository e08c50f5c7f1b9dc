package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pragma/auth-service/internal/core/domain"
)

const (
	DefaultIssuer   = "authentication-msvc"
	defaultTokenTTL = 15 * time.Minute
	minSecretLength = 32
)

var ErrWeakSecret = errors.New("jwt secret must be at least 32 bytes")

// JWTConfig carries the signing parameters for access tokens.
type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// JWTProvider issues and inspects HS256 access tokens.
type JWTProvider struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

type accessClaims struct {
	UserID         string `json:"userId"`
	Email          string `json:"email"`
	DocumentNumber string `json:"documentNumber"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	jwt.RegisteredClaims
}

func NewJWTProvider(cfg JWTConfig) (*JWTProvider, error) {
	if len(cfg.Secret) < minSecretLength {
		return nil, ErrWeakSecret
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTokenTTL
	}
	return &JWTProvider{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		now:    time.Now,
	}, nil
}

// Issue signs a token for user carrying role as the role claim.
func (p *JWTProvider) Issue(user *domain.User, role domain.RoleType) (string, error) {
	now := p.now()
	claims := accessClaims{
		UserID:         user.ID,
		Email:          user.Email,
		DocumentNumber: user.DocumentNumber,
		Name:           user.FullName(),
		Role:           string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Email,
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(p.secret)
}

// IsValid reports whether token is signed with our key, was issued by us and
// has not expired.
func (p *JWTProvider) IsValid(token string) bool {
	_, err := p.parse(token)
	return err == nil
}

// Claim returns a single claim of a valid token as a string.
func (p *JWTProvider) Claim(token, name string) (string, bool) {
	claims, err := p.parse(token)
	if err != nil {
		return "", false
	}
	switch v := claims[name].(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatInt(int64(v), 10), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

func (p *JWTProvider) parse(token string) (jwt.MapClaims, error) {
	if token == "" {
		return nil, jwt.ErrTokenMalformed
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(p.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
