package ports

import (
	"context"

	"github.com/adriit/roledash/internal/core/domain"
)

// UserRepository is the persistence port for user accounts. Lookups return
// domain.ErrUserNotFound when no record matches, and writes that hit the
// email or username unique index return domain.ErrEmailTaken or
// domain.ErrUsernameTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
	// DeleteByEmail removes the account and returns the deleted record.
	DeleteByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateProfile rewrites email and username of the user with id.
	UpdateProfile(ctx context.Context, id, email, username string) (*domain.User, error)
	Ping(ctx context.Context) error
}

// PasswordHasher is the one-way hash capability used for credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
