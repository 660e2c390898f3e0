package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adriit/roledash/internal/core/domain"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "authToken"

const claimsKey = "session.claims"

// SessionCookie writes and reads the session cookie.
type SessionCookie struct {
	MaxAge time.Duration
	Secure bool
}

// Set stores token in an HTTP-only cookie.
func (s SessionCookie) Set(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the cookie on the client.
func (s SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token returns the raw cookie value, or "" when absent.
func (s SessionCookie) Token(c echo.Context) string {
	ck, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return ck.Value
}

// SetClaims stores verified claims on the request context.
func SetClaims(c echo.Context, claims domain.Claims) {
	c.Set(claimsKey, claims)
}

// ClaimsFrom returns the claims stored by Gate or Auth.
func ClaimsFrom(c echo.Context) (domain.Claims, bool) {
	claims, ok := c.Get(claimsKey).(domain.Claims)
	return claims, ok
}
