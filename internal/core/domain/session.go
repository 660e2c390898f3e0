package domain

import "time"

// Identity is the set of user fields embedded in a session token.
type Identity struct {
	UserID   string
	Email    string
	Role     Role
	Username string
}

// IdentityOf returns the token identity for u.
func IdentityOf(u *PublicUser) Identity {
	return Identity{UserID: u.ID, Email: u.Email, Role: u.Role, Username: u.Username}
}

// Claims are the verified contents of a session token.
type Claims struct {
	Identity
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SessionUser is the user part of a SessionView.
type SessionUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// SessionView is the per-request authentication state. It is never persisted.
type SessionView struct {
	Authenticated bool         `json:"authenticated"`
	User          *SessionUser `json:"user,omitempty"`
}

// AuthenticatedView builds the session view for verified claims.
func AuthenticatedView(c Claims) SessionView {
	return SessionView{
		Authenticated: true,
		User: &SessionUser{
			ID:       c.UserID,
			Email:    c.Email,
			Username: c.Username,
			Role:     c.Role,
		},
	}
}
