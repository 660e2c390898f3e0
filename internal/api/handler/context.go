package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adriit/roledash/internal/api/middleware"
	"github.com/adriit/roledash/internal/core/domain"
)

// ctxClaims returns the claims injected by the Auth middleware or the gate.
// Their absence means the route was registered without either and is
// reported as 401.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok || claims.UserID == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return claims, nil
}

// currentUser is the session user of a gated page, or nil.
func currentUser(c echo.Context) *domain.SessionUser {
	claims, err := ctxClaims(c)
	if err != nil {
		return nil
	}
	return domain.AuthenticatedView(claims).User
}
