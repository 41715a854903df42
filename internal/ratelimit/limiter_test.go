package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestLimiter(max int, window time.Duration) (*Limiter, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	l := New(max, window)
	l.now = clock.now
	return l, clock
}

func TestLimiter_AllowsUpToMax(t *testing.T) {
	l, _ := newTestLimiter(5, 15*time.Minute)

	for i := 1; i <= 5; i++ {
		assert.True(t, l.Allow("1.2.3.4"), "request %d should be allowed", i)
	}
	assert.False(t, l.Allow("1.2.3.4"), "request 6 should be denied")
	assert.False(t, l.Allow("1.2.3.4"), "request 7 should still be denied")
}

func TestLimiter_DeniedCallsStillCount(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)

	assert.True(t, l.Allow("k"))
	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))

	// The denied call counted; staying inside the window keeps denying.
	clock.advance(30 * time.Second)
	assert.False(t, l.Allow("k"))
}

func TestLimiter_WindowReset(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)

	assert.True(t, l.Allow("k"))
	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))

	clock.advance(time.Minute + time.Second)

	// Fresh window: the first request is allowed again.
	assert.True(t, l.Allow("k"))
	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute)

	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "a different key should have its own counter")
}

func TestLimiter_ResetReplacesRecord(t *testing.T) {
	l, clock := newTestLimiter(3, time.Minute)

	assert.True(t, l.Allow("k"))
	clock.advance(2 * time.Minute)

	// After the reset instant the record is replaced with count = 1,
	// so two more requests still fit in the new window.
	assert.True(t, l.Allow("k"))
	assert.True(t, l.Allow("k"))
	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))
}
