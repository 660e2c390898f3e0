package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adriit/roledash/internal/api/metrics"
	"github.com/adriit/roledash/internal/core/ports"
)

// Gate enforces the page policy before any handler runs:
//   - protected page, no token: redirect to /login
//   - protected page, bad token: clear the cookie, redirect to /login
//   - protected page, role not allowed: redirect to /unauthorized
//   - public page with a valid token: redirect to the role's dashboard
//
// Everything else passes through. On allowed protected pages the verified
// claims are available through ClaimsFrom.
func Gate(policy *RoutePolicy, tokens ports.TokenService, cookie SessionCookie) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			if roles, ok := policy.Protected(path); ok {
				token := cookie.Token(c)
				if token == "" {
					return redirect(c, LoginPath, "login_redirect")
				}
				claims, ok := tokens.Verify(token)
				if !ok {
					cookie.Clear(c)
					return redirect(c, LoginPath, "invalid_token")
				}
				if !roles.Contains(claims.Role) {
					return redirect(c, UnauthorizedPath, "unauthorized")
				}
				metrics.GateDecisionsTotal.WithLabelValues("allow").Inc()
				SetClaims(c, claims)
				return next(c)
			}

			if policy.Public(path) {
				if token := cookie.Token(c); token != "" {
					if claims, ok := tokens.Verify(token); ok {
						return redirect(c, claims.Role.DashboardPath(), "dashboard_redirect")
					}
				}
			}
			return next(c)
		}
	}
}

func redirect(c echo.Context, to, outcome string) error {
	metrics.GateDecisionsTotal.WithLabelValues(outcome).Inc()
	return c.Redirect(http.StatusFound, to)
}
