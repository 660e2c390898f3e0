package middleware

import (
	"strings"

	"github.com/adriit/roledash/internal/core/domain"
)

// Page paths the gate redirects to.
const (
	LoginPath        = "/login"
	SignupPath       = "/signup"
	UnauthorizedPath = "/unauthorized"
)

// ProtectedRoute restricts Path and everything below it to Roles.
type ProtectedRoute struct {
	Path  string
	Roles domain.RoleSet
}

// RoutePolicy classifies request paths for the gate. It is built once and
// only read afterwards.
type RoutePolicy struct {
	protected []ProtectedRoute
	public    map[string]struct{}
}

func NewRoutePolicy(protected []ProtectedRoute, public ...string) *RoutePolicy {
	p := &RoutePolicy{
		protected: append([]ProtectedRoute(nil), protected...),
		public:    make(map[string]struct{}, len(public)),
	}
	for _, path := range public {
		p.public[path] = struct{}{}
	}
	return p
}

// DefaultRoutePolicy is the page table of the application. Login and signup
// bounce authenticated users to their dashboard.
func DefaultRoutePolicy() *RoutePolicy {
	return NewRoutePolicy([]ProtectedRoute{
		{Path: "/admin/dashboard", Roles: domain.NewRoleSet(domain.RoleAdmin)},
		{Path: "/manager/dashboard", Roles: domain.NewRoleSet(domain.RoleManager)},
		{Path: "/client/dashboard", Roles: domain.NewRoleSet(domain.RoleClient)},
		{Path: "/analytics", Roles: domain.NewRoleSet(domain.RoleAdmin)},
		{Path: "/profile", Roles: domain.AnyRole},
		{Path: "/settings", Roles: domain.AnyRole},
	}, LoginPath, SignupPath)
}

// Protected returns the roles allowed on path. An exact match wins;
// otherwise the longest prefix that ends at a path separator applies.
func (p *RoutePolicy) Protected(path string) (domain.RoleSet, bool) {
	var best *ProtectedRoute
	for i := range p.protected {
		r := &p.protected[i]
		if path == r.Path {
			return r.Roles, true
		}
		if strings.HasPrefix(path, r.Path+"/") && (best == nil || len(r.Path) > len(best.Path)) {
			best = r
		}
	}
	if best == nil {
		return 0, false
	}
	return best.Roles, true
}

// Public reports whether path is a login-style page.
func (p *RoutePolicy) Public(path string) bool {
	_, ok := p.public[path]
	return ok
}
