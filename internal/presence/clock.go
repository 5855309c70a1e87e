// Package presence owns the ephemeral viewer-liveness state and the pure
// derivation of a device's effective awake and online status. Everything in
// this package is process-local and rebuilt from zero on restart.
package presence

import (
	"sync"
	"time"
)

// ActivityClock records the time of the last fleet-list read. It is the
// coarse "is any viewer looking at the map" signal: only full-list reads and
// the explicit wake-all foreground signal touch it, never single-device
// reads or writes.
type ActivityClock struct {
	mu   sync.Mutex
	last time.Time
}

// NewActivityClock creates a clock with no recorded activity.
func NewActivityClock() *ActivityClock {
	return &ActivityClock{}
}

// Touch records viewer activity at the given instant.
func (c *ActivityClock) Touch(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if now.After(c.last) {
		c.last = now
	}
}

// Last returns the most recent recorded activity; the zero time when no
// fleet-list read has happened since process start.
func (c *ActivityClock) Last() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}

// ActiveWithin reports whether any viewer activity was recorded within the
// window before now.
func (c *ActivityClock) ActiveWithin(now time.Time, window time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last.IsZero() {
		return false
	}

	return now.Sub(c.last) < window
}
