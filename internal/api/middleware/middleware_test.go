package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adriit/roledash/internal/core/domain"
)

// stubTokens verifies a fixed set of tokens.
type stubTokens map[string]domain.Claims

func (s stubTokens) Sign(id domain.Identity) (string, error) { return "tok-" + id.UserID, nil }

func (s stubTokens) Verify(token string) (domain.Claims, bool) {
	c, ok := s[token]
	return c, ok
}

func claimsFor(role domain.Role) domain.Claims {
	return domain.Claims{Identity: domain.Identity{
		UserID:   "u-" + string(role),
		Email:    "x.adriit@gmail.com",
		Role:     role,
		Username: "bob_1",
	}}
}

var testTokens = stubTokens{
	"admin":   claimsFor(domain.RoleAdmin),
	"manager": claimsFor(domain.RoleManager),
	"client":  claimsFor(domain.RoleClient),
}

var testCookie = SessionCookie{MaxAge: 24 * time.Hour}

func newRequest(method, path, token string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func clearedCookie(rec *httptest.ResponseRecorder) bool {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == CookieName && ck.Value == "" && ck.MaxAge < 0 {
			return true
		}
	}
	return false
}
