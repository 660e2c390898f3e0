package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/adriit/roledash/internal/core/domain"
	"github.com/adriit/roledash/internal/core/ports"
)

// UserService implements account administration.
type UserService struct {
	repo   ports.UserRepository
	policy *CredentialPolicy
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, policy *CredentialPolicy, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, policy: policy, log: log}
}

// UsernameExists reports whether the trimmed username is taken.
func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check username: %w", err)
	}
	return true, nil
}

func (s *UserService) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	if !role.Valid() {
		return 0, &domain.ValidationError{Field: "role", Message: msgInvalidRole}
	}
	return s.repo.CountByRole(ctx, role)
}

func (s *UserService) TotalUsers(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// RoleBreakdown runs the four counts concurrently.
func (s *UserService) RoleBreakdown(ctx context.Context) (*ports.RoleBreakdown, error) {
	var out ports.RoleBreakdown
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Total, err = s.repo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Admins, err = s.repo.CountByRole(gctx, domain.RoleAdmin)
		return err
	})
	g.Go(func() (err error) {
		out.Managers, err = s.repo.CountByRole(gctx, domain.RoleManager)
		return err
	})
	g.Go(func() (err error) {
		out.Clients, err = s.repo.CountByRole(gctx, domain.RoleClient)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("role breakdown: %w", err)
	}
	return &out, nil
}

// DeleteByEmail removes the account registered under email on behalf of
// actor. Users may delete their own account; admins may delete any. The
// actor is re-read from the store so a token that outlived its account, or
// whose email now belongs to someone else, authorizes nothing.
func (s *UserService) DeleteByEmail(ctx context.Context, actor domain.Identity, email string) (*domain.PublicUser, error) {
	current, err := s.repo.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	target, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if target.ID != current.ID && current.Role != domain.RoleAdmin {
		s.log.Warn().Str("actor_id", current.ID).Str("target_id", target.ID).Msg("delete refused")
		return nil, domain.ErrForbidden
	}

	deleted, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if deleted.ID != target.ID {
		// The email changed hands between lookup and delete.
		s.log.Warn().Str("expected_id", target.ID).Str("deleted_id", deleted.ID).Msg("delete raced with email change")
	}
	s.log.Info().Str("actor_id", current.ID).Str("user_id", deleted.ID).Msg("user deleted")
	return deleted.Public(), nil
}

// UpdateProfile changes email and username, applying the signup format and
// uniqueness rules. The caller's own record does not count as a conflict.
func (s *UserService) UpdateProfile(ctx context.Context, in ports.UpdateProfileInput) (*domain.PublicUser, error) {
	if err := s.policy.CheckEmail(in.Email); err != nil {
		return nil, err
	}
	username, err := s.policy.NormalizeUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if err := emailFree(ctx, s.repo, in.Email, in.UserID); err != nil {
		return nil, err
	}
	if err := usernameFree(ctx, s.repo, username, in.UserID); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateProfile(ctx, in.UserID, in.Email, username)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", updated.ID).Msg("profile updated")
	return updated.Public(), nil
}
