package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/adriit/roledash/internal/api/metrics"
	"github.com/adriit/roledash/internal/api/middleware"
	"github.com/adriit/roledash/internal/core/domain"
	"github.com/adriit/roledash/internal/core/ports"
)

const (
	msgRoleRequired     = "Role is required"
	msgInvalidRole      = "Invalid role. Role must be client, admin, or manager"
	msgEmailRequired    = "Email is required"
	msgProfileRequired  = "Email and username are required"
	msgUserDeleted      = "User deleted successfully"
	msgUserNotFound     = "User not found"
	msgProfileUpdated   = "Profile updated successfully"
	msgInsufficientRole = "Insufficient permissions"
)

// UserHandler serves account administration under /users. Every route runs
// behind middleware.Auth.
type UserHandler struct {
	users  ports.UserService
	tokens ports.TokenService
	cookie middleware.SessionCookie
	log    zerolog.Logger
}

func NewUserHandler(users ports.UserService, tokens ports.TokenService, cookie middleware.SessionCookie, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, tokens: tokens, cookie: cookie, log: log}
}

type countResponse struct {
	Success     bool  `json:"success"`
	ClientCount int64 `json:"clientCount"`
}

type totalResponse struct {
	Success bool  `json:"success"`
	Users   int64 `json:"users"`
}

type deleteUserRequest struct {
	Email string `json:"email" validate:"required"`
}

type deleteUserResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	DeletedUser *domain.PublicUser `json:"deletedUser,omitempty"`
}

type updateProfileRequest struct {
	Email    string `json:"email" validate:"required"`
	Username string `json:"username" validate:"required,notblank"`
}

// CountByRole counts accounts holding one role.
//
// @Summary      Count users by role
// @Tags         users
// @Produce      json
// @Param        role  query     string  true  "ADMIN, MANAGER or CLIENT"
// @Success      200   {object}  countResponse
// @Failure      400   {object}  result
// @Failure      401   {object}  result
// @Failure      403   {object}  result
// @Router       /users/count-by-role [get]
func (h *UserHandler) CountByRole(c echo.Context) error {
	raw := c.QueryParam("role")
	if raw == "" {
		return fail(c, http.StatusBadRequest, msgRoleRequired)
	}
	role, ok := domain.ParseRole(raw)
	if !ok {
		return fail(c, http.StatusBadRequest, msgInvalidRole)
	}

	n, err := h.users.CountByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Success: true, ClientCount: n})
}

// TotalCount counts all accounts.
//
// @Summary      Count all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  totalResponse
// @Failure      401  {object}  result
// @Failure      403  {object}  result
// @Router       /users/total-count [get]
func (h *UserHandler) TotalCount(c echo.Context) error {
	n, err := h.users.TotalUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, totalResponse{Success: true, Users: n})
}

// Delete removes an account. Users may delete themselves; admins anyone.
//
// @Summary      Delete a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      deleteUserRequest  true  "Account email"
// @Success      200   {object}  deleteUserResponse
// @Failure      400   {object}  result
// @Failure      401   {object}  result
// @Failure      403   {object}  result
// @Failure      404   {object}  result
// @Router       /users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	var req deleteUserRequest
	if err := c.Bind(&req); err != nil || c.Validate(&req) != nil {
		return fail(c, http.StatusBadRequest, msgEmailRequired)
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	deleted, err := h.users.DeleteByEmail(c.Request().Context(), claims.Identity, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return fail(c, http.StatusNotFound, msgUserNotFound)
		case errors.Is(err, domain.ErrForbidden):
			return fail(c, http.StatusForbidden, msgInsufficientRole)
		}
		return err
	}

	actor := "admin"
	if deleted.ID == claims.UserID {
		actor = "self"
		h.cookie.Clear(c)
	}
	metrics.AccountsDeletedTotal.WithLabelValues(actor).Inc()
	h.log.Info().Str("actor_id", claims.UserID).Str("deleted_id", deleted.ID).Msg("account deleted")

	return c.JSON(http.StatusOK, deleteUserResponse{Success: true, Message: msgUserDeleted, DeletedUser: deleted})
}

// UpdateProfile changes the caller's email and username and re-issues the
// session cookie so the token carries the new values.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "New email and username"
// @Success      200   {object}  result
// @Failure      400   {object}  result
// @Failure      404   {object}  result
// @Failure      409   {object}  result
// @Router       /users [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil || c.Validate(&req) != nil {
		return fail(c, http.StatusBadRequest, msgProfileRequired)
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		UserID:   claims.UserID,
		Email:    req.Email,
		Username: req.Username,
	})
	if err != nil {
		var (
			verr *domain.ValidationError
			cerr *domain.ConflictError
		)
		switch {
		case errors.As(err, &verr):
			return fail(c, http.StatusBadRequest, verr.Message)
		case errors.As(err, &cerr):
			return fail(c, http.StatusConflict, cerr.Message)
		case errors.Is(err, domain.ErrUserNotFound):
			return fail(c, http.StatusNotFound, msgUserNotFound)
		}
		return err
	}

	token, err := h.tokens.Sign(domain.IdentityOf(user))
	if err != nil {
		return err
	}
	h.cookie.Set(c, token)

	return c.JSON(http.StatusOK, result{Success: true, Message: msgProfileUpdated, User: user})
}
