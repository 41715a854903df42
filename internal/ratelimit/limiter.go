package ratelimit

import (
	"sync"
	"time"
)

// record tracks requests from one client key inside the current window.
type record struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window rate limiter keyed by client identifier.
// A denied call still counts toward the window; the counter only resets
// once the window elapses.
type Limiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	records map[string]*record
	now     func() time.Time
}

// New creates a Limiter allowing max requests per window per key.
func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:     max,
		window:  window,
		records: make(map[string]*record),
		now:     time.Now,
	}
}

// Allow reports whether a request from key is within the limit.
// The first request from a key, or the first after its window elapsed,
// starts a fresh window with count = 1.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	rec, ok := l.records[key]
	if !ok || now.After(rec.resetAt) {
		l.records[key] = &record{count: 1, resetAt: now.Add(l.window)}
		return true
	}

	rec.count++
	return rec.count <= l.max
}
