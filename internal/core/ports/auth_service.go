package ports

import (
	"context"

	"github.com/adriit/roledash/internal/core/domain"
)

// RegisterInput carries the signup form.
type RegisterInput struct {
	Email    string
	Password string
	Username string
	Role     string
}

type AuthService interface {
	// Authenticate returns domain.ErrInvalidCredentials for every kind of
	// rejected login so callers cannot tell the cases apart.
	Authenticate(ctx context.Context, email, password string) (*domain.PublicUser, error)
	Register(ctx context.Context, in RegisterInput) (*domain.PublicUser, error)
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	Sign(id domain.Identity) (string, error)
	// Verify reports false for malformed, forged, expired or foreign tokens.
	Verify(token string) (domain.Claims, bool)
}

// SessionResolver derives the session view of a request from its token.
type SessionResolver interface {
	Resolve(token string) domain.SessionView
}
