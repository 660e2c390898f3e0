package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/samber/oops"

	"github.com/adriit/roledash/internal/core/domain"
)

// errorResponse is the envelope of every error leaving the API.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - maps domain errors to their status codes
//   - logs unexpected errors without leaking details to the client
//   - renders {"success": false, "message": "..."}
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var (
		verr *domain.ValidationError
		cerr *domain.ConflictError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.As(err, &cerr):
		return http.StatusConflict, cerr.Message
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Insufficient permissions"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	}

	ev := log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path())
	if oe, ok := oops.AsOops(err); ok {
		ev = ev.Interface("code", oe.Code()).Interface("context", oe.Context())
	}
	ev.Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
