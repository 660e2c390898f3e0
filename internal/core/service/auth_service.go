package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/adriit/roledash/internal/core/domain"
	"github.com/adriit/roledash/internal/core/ports"
	"github.com/adriit/roledash/internal/pkg/ids"
)

// AuthService implements credential validation and signup.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	policy *CredentialPolicy
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, policy *CredentialPolicy, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, policy: policy, log: log}
}

// Authenticate checks the format of email and password before looking the
// user up, so malformed input never reaches the store.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	if s.policy.CheckEmail(email) != nil || s.policy.CheckPassword(password) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return user.Public(), nil
}

// Register validates the signup form in a fixed order and persists the
// account. The first failing rule decides the returned error.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.PublicUser, error) {
	if err := s.policy.CheckEmail(in.Email); err != nil {
		return nil, err
	}
	if err := s.policy.CheckPassword(in.Password); err != nil {
		return nil, err
	}
	username, err := s.policy.NormalizeUsername(in.Username)
	if err != nil {
		return nil, err
	}

	if err := emailFree(ctx, s.repo, in.Email, ""); err != nil {
		return nil, err
	}
	if err := usernameFree(ctx, s.repo, username, ""); err != nil {
		return nil, err
	}

	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return nil, &domain.ValidationError{Field: "role", Message: msgInvalidRole}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		ID:           ids.New(),
		Email:        in.Email,
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created.Public(), nil
}

// emailFree fails with ErrEmailTaken when an account other than selfID
// already uses email.
func emailFree(ctx context.Context, repo ports.UserRepository, email, selfID string) error {
	existing, err := repo.FindByEmail(ctx, email)
	return checkFree(existing, err, selfID, domain.ErrEmailTaken)
}

func usernameFree(ctx context.Context, repo ports.UserRepository, username, selfID string) error {
	existing, err := repo.FindByUsername(ctx, username)
	return checkFree(existing, err, selfID, domain.ErrUsernameTaken)
}

func checkFree(existing *domain.User, err error, selfID string, conflict error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("uniqueness check: %w", err)
	case selfID != "" && existing.ID == selfID:
		return nil
	default:
		return conflict
	}
}
