package domain

import (
	"strings"
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleClient  Role = "CLIENT"
)

// AllRoles lists every role in a stable order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleClient}
}

// ParseRole upper-cases s and reports whether it names a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleClient:
		return true
	default:
		return false
	}
}

// DashboardPath is the landing page for an authenticated user of this role.
func (r Role) DashboardPath() string {
	return "/" + strings.ToLower(string(r)) + "/dashboard"
}

func (r Role) bit() RoleSet {
	switch r {
	case RoleAdmin:
		return 1 << 0
	case RoleManager:
		return 1 << 1
	case RoleClient:
		return 1 << 2
	default:
		return 0
	}
}

// RoleSet is a set of roles allowed on a route.
type RoleSet uint8

// NewRoleSet builds a set from roles; unknown roles are ignored.
func NewRoleSet(roles ...Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		s |= r.bit()
	}
	return s
}

// AnyRole allows every authenticated user.
var AnyRole = NewRoleSet(AllRoles()...)

func (s RoleSet) Contains(r Role) bool {
	b := r.bit()
	return b != 0 && s&b == b
}

// User models an account as persisted by the user store.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the projection of a User that may leave the service layer.
type PublicUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Public strips everything but the identity fields.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	return &PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Role:     u.Role,
	}
}
