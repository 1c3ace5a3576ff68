// internal/ratelimit/limiter.go

// Package ratelimit bounds request volume per client identity with a
// rolling window. It is an abuse deterrent, not a security boundary.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether one more request from a client is allowed right
// now. When it is, the request is recorded against the window.
type Limiter interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
}

// Clock is injectable so tests can move time instead of sleeping.
type Clock func() time.Time

// MemoryLimiter keeps a rolling list of request timestamps per client in
// process memory. A single mutex serializes the read-modify-write so
// concurrent requests from one client cannot undercount.
type MemoryLimiter struct {
	mu      sync.Mutex
	cap     int
	window  time.Duration
	now     Clock
	history map[string][]time.Time
}

func NewMemoryLimiter(cap int, window time.Duration) *MemoryLimiter {
	return NewMemoryLimiterWithClock(cap, window, time.Now)
}

func NewMemoryLimiterWithClock(cap int, window time.Duration, now Clock) *MemoryLimiter {
	return &MemoryLimiter{
		cap:     cap,
		window:  window,
		now:     now,
		history: make(map[string][]time.Time),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, clientKey string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.history[clientKey][:0]
	for _, t := range l.history[clientKey] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.cap {
		l.history[clientKey] = recent
		return false, nil
	}

	l.history[clientKey] = append(recent, now)
	return true, nil
}
