package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adriit/roledash/internal/api/middleware"
	"github.com/adriit/roledash/internal/core/domain"
	"github.com/adriit/roledash/internal/core/ports"
)

// page is the JSON payload a dashboard front end renders.
type page struct {
	Page        string               `json:"page"`
	User        *domain.SessionUser  `json:"user,omitempty"`
	Session     *domain.SessionView  `json:"session,omitempty"`
	Stats       *ports.RoleBreakdown `json:"stats,omitempty"`
	ClientCount *int64               `json:"clientCount,omitempty"`
	Message     string               `json:"message,omitempty"`
}

// PageHandler serves the pages behind the authorization gate. Protected
// pages read the claims the gate stored on the context.
type PageHandler struct {
	users    ports.UserService
	sessions ports.SessionResolver
	cookie   middleware.SessionCookie
}

func NewPageHandler(users ports.UserService, sessions ports.SessionResolver, cookie middleware.SessionCookie) *PageHandler {
	return &PageHandler{users: users, sessions: sessions, cookie: cookie}
}

func (h *PageHandler) Home(c echo.Context) error {
	view := h.sessions.Resolve(h.cookie.Token(c))
	return c.JSON(http.StatusOK, page{Page: "home", Session: &view})
}

func (h *PageHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, page{Page: "login"})
}

func (h *PageHandler) Signup(c echo.Context) error {
	return c.JSON(http.StatusOK, page{Page: "signup"})
}

func (h *PageHandler) Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusForbidden, page{
		Page:    "unauthorized",
		Message: "You do not have permission to access this page",
	})
}

// AdminDashboard shows the account totals per role.
//
// @Summary      Admin dashboard
// @Tags         pages
// @Produce      json
// @Success      200  {object}  page
// @Failure      302  "redirect to /login or /unauthorized"
// @Router       /admin/dashboard [get]
func (h *PageHandler) AdminDashboard(c echo.Context) error {
	stats, err := h.users.RoleBreakdown(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page{Page: "admin-dashboard", User: currentUser(c), Stats: stats})
}

// ManagerDashboard shows the number of clients.
//
// @Summary      Manager dashboard
// @Tags         pages
// @Produce      json
// @Success      200  {object}  page
// @Failure      302  "redirect to /login or /unauthorized"
// @Router       /manager/dashboard [get]
func (h *PageHandler) ManagerDashboard(c echo.Context) error {
	n, err := h.users.CountByRole(c.Request().Context(), domain.RoleClient)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page{Page: "manager-dashboard", User: currentUser(c), ClientCount: &n})
}

func (h *PageHandler) ClientDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, page{Page: "client-dashboard", User: currentUser(c)})
}

// Analytics is restricted to admins.
//
// @Summary      Analytics
// @Tags         pages
// @Produce      json
// @Success      200  {object}  page
// @Failure      302  "redirect to /login or /unauthorized"
// @Router       /analytics [get]
func (h *PageHandler) Analytics(c echo.Context) error {
	stats, err := h.users.RoleBreakdown(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page{Page: "analytics", User: currentUser(c), Stats: stats})
}

func (h *PageHandler) Profile(c echo.Context) error {
	return c.JSON(http.StatusOK, page{Page: "profile", User: currentUser(c)})
}

func (h *PageHandler) Settings(c echo.Context) error {
	return c.JSON(http.StatusOK, page{Page: "settings", User: currentUser(c)})
}
