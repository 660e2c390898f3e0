package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/adriit/roledash/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// sessionClaims is the wire form of a session token.
type sessionClaims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption customises a TokenService.
type TokenOption func(*TokenService)

// WithClock replaces the wall clock used for iat/exp and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(secret, issuer string, ttl time.Duration, opts ...TokenOption) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	s := &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL is the lifetime of tokens issued by Sign.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Sign issues a token for id expiring TTL from now.
func (s *TokenService) Sign(id domain.Identity) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("%w: signing key is not configured", domain.ErrSigning)
	}

	now := s.now().UTC()
	claims := sessionClaims{
		UserID:   id.UserID,
		Email:    id.Email,
		Role:     string(id.Role),
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSigning, err)
	}
	return signed, nil
}

// Verify checks signature, issuer and expiry. A token is expired once
// now >= exp. Every failure yields ok=false.
func (s *TokenService) Verify(token string) (domain.Claims, bool) {
	if token == "" || len(s.secret) == 0 {
		return domain.Claims{}, false
	}

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return domain.Claims{}, false
	}

	role, ok := domain.ParseRole(claims.Role)
	if !ok || claims.UserID == "" {
		return domain.Claims{}, false
	}

	out := domain.Claims{
		Identity: domain.Identity{
			UserID:   claims.UserID,
			Email:    claims.Email,
			Role:     role,
			Username: claims.Username,
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, true
}
