package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/adriit/roledash/internal/core/domain"
)

// result is the envelope of every mutating API response.
type result struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	User    *domain.PublicUser `json:"user,omitempty"`
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, result{Success: false, Message: message})
}
