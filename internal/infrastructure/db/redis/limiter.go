package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adriit/roledash/internal/core/ports"
)

// fixedWindow increments the counter for the current window and starts the
// window on the first hit. It returns the hit count and the window's
// remaining lifetime in milliseconds.
var fixedWindow = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {n, ttl}
`)

// AttemptLimiter counts attempts per key in fixed windows.
// Key format: ratelimit:<scope>:<key>
type AttemptLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

func NewAttemptLimiter(client *redis.Client, max int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{client: client, max: max, window: window}
}

// Allow records one attempt for key within scope.
func (l *AttemptLimiter) Allow(ctx context.Context, scope, key string) (ports.LimitDecision, error) {
	res, err := fixedWindow.Run(ctx, l.client, []string{l.key(scope, key)}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return ports.LimitDecision{}, fmt.Errorf("rate limit: %w", err)
	}
	if len(res) != 2 {
		return ports.LimitDecision{}, fmt.Errorf("rate limit: unexpected reply %v", res)
	}
	return decide(res[0], res[1], l.max), nil
}

func decide(hits, ttlMillis int64, max int) ports.LimitDecision {
	if hits <= int64(max) {
		return ports.LimitDecision{Allowed: true, Remaining: max - int(hits)}
	}
	return ports.LimitDecision{RetryAfter: time.Duration(ttlMillis) * time.Millisecond}
}

func (l *AttemptLimiter) key(scope, key string) string {
	return fmt.Sprintf("ratelimit:%s:%s", scope, key)
}
