package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/adriit/roledash/internal/core/ports"
)

const bucketTTL = 10 * time.Minute

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// LocalLimiter is an in-process token bucket per scope and key. It stands in
// for the Redis limiter when Redis is unreachable, so limits are per instance.
type LocalLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewLocalLimiter allows max attempts per window, refilled evenly.
func NewLocalLimiter(max int, window time.Duration) *LocalLimiter {
	return &LocalLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Every(window / time.Duration(max)),
		burst:   max,
		now:     time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, scope, key string) (ports.LimitDecision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	id := scope + ":" + key
	b, ok := l.buckets[id]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[id] = b
	}
	b.seen = now

	r := b.lim.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return ports.LimitDecision{RetryAfter: delay}, nil
	}
	return ports.LimitDecision{Allowed: true, Remaining: int(b.lim.TokensAt(now))}, nil
}

// sweep drops buckets idle for longer than bucketTTL, at most once a minute.
func (l *LocalLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < time.Minute {
		return
	}
	l.lastSweep = now
	for id, b := range l.buckets {
		if now.Sub(b.seen) > bucketTTL {
			delete(l.buckets, id)
		}
	}
}
