package service

import (
	"github.com/adriit/roledash/internal/core/domain"
	"github.com/adriit/roledash/internal/core/ports"
)

// SessionResolver derives the session view purely from the token. Username
// and role are taken from the claims, so a role change becomes visible on the
// next login rather than on the next request.
type SessionResolver struct {
	tokens ports.TokenService
}

func NewSessionResolver(tokens ports.TokenService) *SessionResolver {
	return &SessionResolver{tokens: tokens}
}

func (r *SessionResolver) Resolve(token string) domain.SessionView {
	if token == "" {
		return domain.SessionView{}
	}
	claims, ok := r.tokens.Verify(token)
	if !ok {
		return domain.SessionView{}
	}
	return domain.AuthenticatedView(claims)
}
