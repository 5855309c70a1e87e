package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatchRegistry_WatchUnwatchRoundTrip(t *testing.T) {
	reg := NewWatchRegistry(0)

	assert.False(t, reg.IsWatched("abc"))

	reg.Watch("abc", "v1")
	assert.True(t, reg.IsWatched("abc"))
	assert.Equal(t, 1, reg.Watchers("abc"))

	// Watch is idempotent.
	reg.Watch("abc", "v1")
	assert.Equal(t, 1, reg.Watchers("abc"))

	reg.Unwatch("abc", "v1")
	assert.False(t, reg.IsWatched("abc"))
}

func TestWatchRegistry_UnwatchWithoutWatchIsNoop(t *testing.T) {
	reg := NewWatchRegistry(0)

	reg.Unwatch("abc", "v1")
	assert.False(t, reg.IsWatched("abc"))

	// Removing a non-member leaves other watchers alone.
	reg.Watch("abc", "v1")
	reg.Unwatch("abc", "v2")
	assert.True(t, reg.IsWatched("abc"))
}

func TestWatchRegistry_MultipleWatchersAndTargets(t *testing.T) {
	reg := NewWatchRegistry(0)

	reg.Watch("abc", "v1")
	reg.Watch("abc", "v2")
	reg.Watch("def", "v1")

	assert.Equal(t, 2, reg.Watchers("abc"))
	assert.Equal(t, 1, reg.Watchers("def"))

	reg.Unwatch("abc", "v1")
	assert.True(t, reg.IsWatched("abc"))
	assert.True(t, reg.IsWatched("def"))
}

func TestWatchRegistry_LeaseExpiry(t *testing.T) {
	reg := NewWatchRegistry(time.Minute)
	now := time.Now()
	reg.now = func() time.Time { return now }

	reg.Watch("abc", "v1")
	assert.True(t, reg.IsWatched("abc"))

	// Renewal pushes the lease forward.
	now = now.Add(45 * time.Second)
	reg.Watch("abc", "v1")
	now = now.Add(45 * time.Second)
	assert.True(t, reg.IsWatched("abc"))

	// Past the renewed lease the edge is gone.
	now = now.Add(time.Minute)
	assert.False(t, reg.IsWatched("abc"))
}

func TestWatchRegistry_ZeroTTLNeverExpires(t *testing.T) {
	reg := NewWatchRegistry(0)
	now := time.Now()
	reg.now = func() time.Time { return now }

	reg.Watch("abc", "v1")
	now = now.Add(365 * 24 * time.Hour)
	assert.True(t, reg.IsWatched("abc"))
}
