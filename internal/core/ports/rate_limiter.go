package ports

import (
	"context"
	"time"
)

// LimitDecision is the outcome of a single limiter hit.
type LimitDecision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// AttemptLimiter counts attempts per key within a scope, such as login
// attempts per client IP.
type AttemptLimiter interface {
	Allow(ctx context.Context, scope, key string) (LimitDecision, error)
}
