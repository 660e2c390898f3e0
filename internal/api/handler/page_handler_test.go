package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/adriit/roledash/internal/core/domain"
	"github.com/adriit/roledash/internal/core/ports"
)

func breakdownUsers(t *testing.T) *stubUserService {
	return &stubUserService{
		t: t,
		roleBreakdown: func(context.Context) (*ports.RoleBreakdown, error) {
			return &ports.RoleBreakdown{Total: 6, Admins: 1, Managers: 2, Clients: 3}, nil
		},
		countByRole: func(_ context.Context, role domain.Role) (int64, error) {
			if role != domain.RoleClient {
				t.Fatalf("expected CLIENT, got %s", role)
			}
			return 3, nil
		},
	}
}

func TestPageHandler_AdminDashboard(t *testing.T) {
	h := NewPageHandler(breakdownUsers(t), stubSessions{}, testCookie)

	rec, c := newContext(http.MethodGet, "/admin/dashboard", "")
	asUser(c, admin)
	if err := h.AdminDashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode(t, rec)
	stats, _ := resp["stats"].(map[string]any)
	user, _ := resp["user"].(map[string]any)
	if resp["page"] != "admin-dashboard" || user["role"] != "ADMIN" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if stats["users"] != float64(6) || stats["clients"] != float64(3) || stats["managers"] != float64(2) {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestPageHandler_ManagerDashboard(t *testing.T) {
	h := NewPageHandler(breakdownUsers(t), stubSessions{}, testCookie)

	rec, c := newContext(http.MethodGet, "/manager/dashboard", "")
	if err := h.ManagerDashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode(t, rec); resp["clientCount"] != float64(3) {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestPageHandler_StatsFailurePropagates(t *testing.T) {
	users := &stubUserService{
		t:             t,
		roleBreakdown: func(context.Context) (*ports.RoleBreakdown, error) { return nil, errBoom },
	}
	h := NewPageHandler(users, stubSessions{}, testCookie)

	_, c := newContext(http.MethodGet, "/analytics", "")
	if err := h.Analytics(c); err != errBoom {
		t.Fatalf("expected errBoom, got %v", err)
	}
}

func TestPageHandler_UserPages(t *testing.T) {
	h := NewPageHandler(&stubUserService{t: t}, stubSessions{}, testCookie)

	cases := []struct {
		page  string
		serve func(*PageHandler, echo.Context) error
	}{
		{"client-dashboard", (*PageHandler).ClientDashboard},
		{"profile", (*PageHandler).Profile},
		{"settings", (*PageHandler).Settings},
	}
	for _, tc := range cases {
		rec, c := newContext(http.MethodGet, "/"+tc.page, "")
		asUser(c, bob)
		if err := tc.serve(h, c); err != nil {
			t.Fatalf("%s: handler error: %v", tc.page, err)
		}
		resp := decode(t, rec)
		user, _ := resp["user"].(map[string]any)
		if resp["page"] != tc.page || user["email"] != bob.Email {
			t.Fatalf("%s: unexpected body: %+v", tc.page, resp)
		}
	}
}

func TestPageHandler_Home(t *testing.T) {
	sessions := stubSessions{views: map[string]domain.SessionView{
		"good": domain.AuthenticatedView(claimsOf(bob)),
	}}
	h := NewPageHandler(&stubUserService{t: t}, sessions, testCookie)

	rec, c := newContext(http.MethodGet, "/", "")
	c.Request().AddCookie(&http.Cookie{Name: "authToken", Value: "good"})
	if err := h.Home(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode(t, rec)
	session, _ := resp["session"].(map[string]any)
	if resp["page"] != "home" || session["authenticated"] != true {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestPageHandler_Unauthorized(t *testing.T) {
	h := NewPageHandler(&stubUserService{t: t}, stubSessions{}, testCookie)

	rec, c := newContext(http.MethodGet, "/unauthorized", "")
	if err := h.Unauthorized(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
