package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adriit/roledash/internal/core/domain"
	"github.com/adriit/roledash/internal/core/ports"
)

const (
	msgAuthRequired = "Authentication required"
	msgInvalidToken = "Invalid or expired token"
	msgForbidden    = "Insufficient permissions"
)

// Auth protects API routes. It answers 401 instead of redirecting.
func Auth(tokens ports.TokenService, cookie SessionCookie) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := cookie.Token(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, msgAuthRequired)
			}
			claims, ok := tokens.Verify(token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
			}
			SetClaims(c, claims)
			return next(c)
		}
	}
}

// RBAC enforces role-based access control. It must run after Auth.
func RBAC(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := domain.NewRoleSet(roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, msgAuthRequired)
			}
			if !allowed.Contains(claims.Role) {
				return echo.NewHTTPError(http.StatusForbidden, msgForbidden)
			}
			return next(c)
		}
	}
}
