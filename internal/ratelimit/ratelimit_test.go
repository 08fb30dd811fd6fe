package ratelimit

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errStore always fails, simulating an unavailable backend.
type errStore struct{}

func (errStore) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("connection refused")
}

func newTestLimiter(t *testing.T, store Store, cfg Config) *Limiter {
	t.Helper()
	return New(store, cfg, slog.Default())
}

func TestCheck_AllowsUpToMax(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	l := newTestLimiter(t, store, Config{Route: "api", Window: time.Minute, Max: 5})

	for i := 0; i < 5; i++ {
		dec := l.Check(context.Background(), "1.2.3.4")
		assert.True(t, dec.Allowed, "request %d should be allowed", i)
	}

	dec := l.Check(context.Background(), "1.2.3.4")
	assert.False(t, dec.Allowed, "request over limit should be denied")
	assert.Greater(t, dec.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, dec.RetryAfter, time.Minute)
}

func TestCheck_ClientsAreIndependent(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	l := newTestLimiter(t, store, Config{Route: "api", Window: time.Minute, Max: 1})

	require.True(t, l.Check(context.Background(), "1.1.1.1").Allowed)
	require.False(t, l.Check(context.Background(), "1.1.1.1").Allowed)

	assert.True(t, l.Check(context.Background(), "2.2.2.2").Allowed)
}

func TestCheck_WindowResets(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	now := time.Date(2026, 3, 1, 12, 0, 30, 0, time.UTC)
	store.now = func() time.Time { return now }

	l := newTestLimiter(t, store, Config{Route: "api", Window: time.Minute, Max: 1})
	l.now = store.now

	require.True(t, l.Check(context.Background(), "1.2.3.4").Allowed)
	require.False(t, l.Check(context.Background(), "1.2.3.4").Allowed)

	// Advance past the window boundary: the count starts over.
	now = now.Add(time.Minute)
	assert.True(t, l.Check(context.Background(), "1.2.3.4").Allowed)
}

func TestCheck_RetryAfterIsTimeToWindowReset(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	// 15 seconds into the current minute window.
	now := time.Date(2026, 3, 1, 12, 0, 15, 0, time.UTC)
	store.now = func() time.Time { return now }

	l := newTestLimiter(t, store, Config{Route: "api", Window: time.Minute, Max: 1})
	l.now = store.now

	require.True(t, l.Check(context.Background(), "1.2.3.4").Allowed)

	dec := l.Check(context.Background(), "1.2.3.4")
	require.False(t, dec.Allowed)
	assert.Equal(t, 45*time.Second, dec.RetryAfter)
}

func TestCheck_FailOpen(t *testing.T) {
	l := newTestLimiter(t, errStore{}, Config{Route: "api", Window: time.Minute, Max: 1, FailOpen: true})

	for i := 0; i < 10; i++ {
		assert.True(t, l.Check(context.Background(), "1.2.3.4").Allowed)
	}
}

func TestCheck_FailClosed(t *testing.T) {
	l := newTestLimiter(t, errStore{}, Config{Route: "api", Window: time.Minute, Max: 1, FailOpen: false})

	dec := l.Check(context.Background(), "1.2.3.4")
	assert.False(t, dec.Allowed)
	assert.Equal(t, time.Minute, dec.RetryAfter)
}

func TestMemoryStore_EntryExpires(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	count, err := store.Incr(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Incr(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	now = now.Add(61 * time.Second)
	count, err = store.Incr(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "expired entry must reset the count")
}
