// Package ratelimit implements fixed-window request rate limiting.
//
// Counters are keyed by (route, client, window start). The counter store is
// the only shared mutable state; atomicity is delegated to the backing store
// (Redis INCR, or a mutex in the in-memory store).
package ratelimit

import (
	"context"
	"log/slog"
	"time"
)

// Store increments the counter for a window key and returns the new count.
// The entry must expire once the window has fully elapsed.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Decision is the outcome of a rate-limit check.
type Decision struct {
	Allowed bool
	// RetryAfter is the time until the current window resets.
	// Zero when the request is allowed.
	RetryAfter time.Duration
}

// Limiter applies a fixed-window limit for one protected route.
type Limiter struct {
	store    Store
	route    string
	window   time.Duration
	max      int64
	failOpen bool
	log      *slog.Logger
	now      func() time.Time
}

// Config holds per-route limiter settings.
type Config struct {
	Route  string
	Window time.Duration
	Max    int64
	// FailOpen controls behavior when the counter store is unavailable:
	// true allows the request (availability over strictness), false denies.
	FailOpen bool
}

// New creates a Limiter for one route.
func New(store Store, cfg Config, log *slog.Logger) *Limiter {
	return &Limiter{
		store:    store,
		route:    cfg.Route,
		window:   cfg.Window,
		max:      cfg.Max,
		failOpen: cfg.FailOpen,
		log:      log.With("component", "ratelimit", "route", cfg.Route),
		now:      time.Now,
	}
}

// Check counts the request against the client's current window and decides.
// The max+1-th request within one window is denied with the remaining time
// until the window resets; a fresh window starts the count over.
func (l *Limiter) Check(ctx context.Context, clientKey string) Decision {
	now := l.now()
	windowStart := now.Truncate(l.window)
	key := l.route + ":" + clientKey + ":" + windowStart.UTC().Format(time.RFC3339)

	count, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		l.log.WarnContext(ctx, "counter store unavailable",
			slog.String("client", clientKey),
			slog.Bool("fail_open", l.failOpen),
			slog.String("error", err.Error()),
		)
		if l.failOpen {
			return Decision{Allowed: true}
		}
		return Decision{Allowed: false, RetryAfter: l.window}
	}

	if count > l.max {
		return Decision{
			Allowed:    false,
			RetryAfter: windowStart.Add(l.window).Sub(now),
		}
	}

	return Decision{Allowed: true}
}
