package presence

import (
	"sync"
	"time"
)

// WatchRegistry is the in-memory map from a target device id to the set of
// viewers currently observing it. Edges are leases: a watch call stores an
// expiry and a repeated watch renews it, so a viewer that disconnects without
// unwatching leaves a dangling edge for at most the lease TTL. A TTL of zero
// disables expiry and restores explicit-unwatch-only semantics.
//
// A watch may reference a target that has no stored record yet; the registry
// never consults the record store.
type WatchRegistry struct {
	mu    sync.RWMutex
	ttl   time.Duration
	edges map[string]map[string]time.Time // target id -> watcher id -> lease expiry
	now   func() time.Time
}

// NewWatchRegistry creates an empty registry with the given lease TTL.
func NewWatchRegistry(ttl time.Duration) *WatchRegistry {
	return &WatchRegistry{
		ttl:   ttl,
		edges: make(map[string]map[string]time.Time),
		now:   time.Now,
	}
}

// Watch adds or renews the (target, watcher) edge. Idempotent.
func (r *WatchRegistry) Watch(targetID, watcherID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.edges[targetID]
	if !ok {
		set = make(map[string]time.Time)
		r.edges[targetID] = set
	}
	var expiry time.Time
	if r.ttl > 0 {
		expiry = r.now().Add(r.ttl)
	}
	set[watcherID] = expiry
}

// Unwatch removes the (target, watcher) edge. Removing a non-member or from
// an unknown target is a no-op.
func (r *WatchRegistry) Unwatch(targetID, watcherID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.edges[targetID]
	if !ok {
		return
	}
	delete(set, watcherID)
	if len(set) == 0 {
		delete(r.edges, targetID)
	}
}

// IsWatched reports whether at least one live (unexpired) watcher observes
// the target. Expired leases encountered on the way are pruned.
func (r *WatchRegistry) IsWatched(targetID string) bool {
	return r.Watchers(targetID) > 0
}

// Watchers returns the number of live watchers for the target.
func (r *WatchRegistry) Watchers(targetID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.edges[targetID]
	if !ok {
		return 0
	}
	now := r.now()
	for watcher, expiry := range set {
		if !expiry.IsZero() && !now.Before(expiry) {
			delete(set, watcher)
		}
	}
	if len(set) == 0 {
		delete(r.edges, targetID)

		return 0
	}

	return len(set)
}
