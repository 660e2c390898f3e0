package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adriit/roledash/internal/api/middleware"
	"github.com/adriit/roledash/internal/core/domain"
	"github.com/adriit/roledash/internal/core/ports"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, email, password string) (*domain.PublicUser, error)
	registerFn     func(ctx context.Context, in ports.RegisterInput) (*domain.PublicUser, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	return s.authenticateFn(ctx, email, password)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.PublicUser, error) {
	return s.registerFn(ctx, in)
}

// stubUserService fails the test on any call without a configured func.
type stubUserService struct {
	t               *testing.T
	usernameExists  func(ctx context.Context, username string) (bool, error)
	countByRole     func(ctx context.Context, role domain.Role) (int64, error)
	totalUsers      func(ctx context.Context) (int64, error)
	roleBreakdown   func(ctx context.Context) (*ports.RoleBreakdown, error)
	deleteByEmail   func(ctx context.Context, actor domain.Identity, email string) (*domain.PublicUser, error)
	updateProfileFn func(ctx context.Context, in ports.UpdateProfileInput) (*domain.PublicUser, error)
}

func (s *stubUserService) unexpected(name string) {
	s.t.Helper()
	s.t.Fatalf("unexpected call to %s", name)
}

func (s *stubUserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	if s.usernameExists == nil {
		s.unexpected("UsernameExists")
	}
	return s.usernameExists(ctx, username)
}

func (s *stubUserService) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	if s.countByRole == nil {
		s.unexpected("CountByRole")
	}
	return s.countByRole(ctx, role)
}

func (s *stubUserService) TotalUsers(ctx context.Context) (int64, error) {
	if s.totalUsers == nil {
		s.unexpected("TotalUsers")
	}
	return s.totalUsers(ctx)
}

func (s *stubUserService) RoleBreakdown(ctx context.Context) (*ports.RoleBreakdown, error) {
	if s.roleBreakdown == nil {
		s.unexpected("RoleBreakdown")
	}
	return s.roleBreakdown(ctx)
}

func (s *stubUserService) DeleteByEmail(ctx context.Context, actor domain.Identity, email string) (*domain.PublicUser, error) {
	if s.deleteByEmail == nil {
		s.unexpected("DeleteByEmail")
	}
	return s.deleteByEmail(ctx, actor, email)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, in ports.UpdateProfileInput) (*domain.PublicUser, error) {
	if s.updateProfileFn == nil {
		s.unexpected("UpdateProfile")
	}
	return s.updateProfileFn(ctx, in)
}

// stubTokens signs "tok-<id>" and verifies only tokens it knows about.
type stubTokens struct {
	signErr error
	known   map[string]domain.Claims
}

func (s *stubTokens) Sign(id domain.Identity) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return "tok-" + id.UserID, nil
}

func (s *stubTokens) Verify(token string) (domain.Claims, bool) {
	c, ok := s.known[token]
	return c, ok
}

type stubSessions struct {
	views map[string]domain.SessionView
}

func (s stubSessions) Resolve(token string) domain.SessionView {
	return s.views[token]
}

var (
	testCookie = middleware.SessionCookie{MaxAge: 24 * time.Hour}
	errBoom    = errors.New("boom")
)

var bob = &domain.PublicUser{ID: "u1", Email: "x.adriit@gmail.com", Username: "bob_1", Role: domain.RoleClient}

func claimsOf(u *domain.PublicUser) domain.Claims {
	return domain.Claims{Identity: domain.IdentityOf(u)}
}

func newContext(method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return out
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.CookieName {
			return ck
		}
	}
	return nil
}
