package ports

import (
	"context"

	"github.com/adriit/roledash/internal/core/domain"
)

// UpdateProfileInput carries a self-service profile edit.
type UpdateProfileInput struct {
	UserID   string
	Email    string
	Username string
}

// RoleBreakdown is the account count overall and per role.
type RoleBreakdown struct {
	Total    int64 `json:"users"`
	Admins   int64 `json:"admins"`
	Managers int64 `json:"managers"`
	Clients  int64 `json:"clients"`
}

// UserService covers account administration outside of login/signup.
type UserService interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
	TotalUsers(ctx context.Context) (int64, error)
	RoleBreakdown(ctx context.Context) (*RoleBreakdown, error)
	// DeleteByEmail removes the account under email if actor owns it or is an admin.
	DeleteByEmail(ctx context.Context, actor domain.Identity, email string) (*domain.PublicUser, error)
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*domain.PublicUser, error)
}
