package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/adriit/roledash/internal/api/metrics"
	"github.com/adriit/roledash/internal/core/ports"
)

const (
	msgTooManyAttempts = "Too many attempts, please try again later"

	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
)

// Throttle limits attempts per client IP under scope. A nil limiter disables
// it. Limiter errors let the request through. The client IP comes from the
// Echo instance's IPExtractor, so forwarded headers only count when a
// trusted proxy set them.
func Throttle(limiter ports.AttemptLimiter, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil {
			return next
		}
		return func(c echo.Context) error {
			d, err := limiter.Allow(c.Request().Context(), scope, c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !d.Allowed {
				secs := int(math.Ceil(d.RetryAfter.Seconds()))
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				metrics.RateLimitedTotal.WithLabelValues(scope).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, msgTooManyAttempts)
			}
			c.Response().Header().Set(HeaderRateLimitRemaining, strconv.Itoa(d.Remaining))
			return next(c)
		}
	}
}
