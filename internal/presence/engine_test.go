package presence

import (
	"testing"
	"time"

	"fleettrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func createTestEngine(t *testing.T, now time.Time) (*Engine, *ActivityClock, *WatchRegistry) {
	t.Helper()
	clock := NewActivityClock()
	watches := NewWatchRegistry(0)
	engine := NewEngine(clock, watches, DefaultActivityWindow, DefaultStalenessWindow)
	engine.now = func() time.Time { return now }

	return engine, clock, watches
}

func TestEngine_Derive_AwakeRequiresAppActivity(t *testing.T) {
	now := time.Now()
	engine, clock, _ := createTestEngine(t, now)

	device := &entity.Device{DeviceID: "abc", RequestedAwake: true, LastUpdateAt: now}

	// No fleet-list read yet: the durable flag alone is not enough.
	state := engine.Derive(device)
	assert.False(t, state.EffectiveAwake)
	assert.False(t, state.IsWatched)

	clock.Touch(now.Add(-30 * time.Second))
	state = engine.Derive(device)
	assert.True(t, state.EffectiveAwake)

	// Activity older than the window no longer counts.
	clock2 := NewActivityClock()
	clock2.Touch(now.Add(-2 * time.Minute))
	engine.clock = clock2
	state = engine.Derive(device)
	assert.False(t, state.EffectiveAwake)
}

func TestEngine_Derive_WatchOverridesEverything(t *testing.T) {
	now := time.Now()
	engine, _, watches := createTestEngine(t, now)

	// requestedAwake=false and a stale activity clock, but a watcher is
	// looking at this specific device.
	device := &entity.Device{DeviceID: "abc", RequestedAwake: false, LastUpdateAt: now}
	watches.Watch("abc", "v1")

	state := engine.Derive(device)
	assert.True(t, state.IsWatched)
	assert.True(t, state.EffectiveAwake)
}

func TestEngine_Derive_SleepingDeviceStaysAsleepWhileAppActive(t *testing.T) {
	now := time.Now()
	engine, clock, _ := createTestEngine(t, now)
	clock.Touch(now)

	device := &entity.Device{DeviceID: "abc", RequestedAwake: false, LastUpdateAt: now}

	state := engine.Derive(device)
	assert.False(t, state.EffectiveAwake)
}

func TestEngine_Derive_OnlineStatusBoundary(t *testing.T) {
	now := time.Now()
	engine, _, _ := createTestEngine(t, now)

	fresh := &entity.Device{DeviceID: "a", LastUpdateAt: now.Add(-59 * time.Second)}
	assert.Equal(t, entity.StatusOnline, engine.Derive(fresh).Status)

	boundary := &entity.Device{DeviceID: "b", LastUpdateAt: now.Add(-DefaultStalenessWindow)}
	assert.Equal(t, entity.StatusOffline, engine.Derive(boundary).Status)

	stale := &entity.Device{DeviceID: "c", LastUpdateAt: now.Add(-10 * time.Minute)}
	assert.Equal(t, entity.StatusOffline, engine.Derive(stale).Status)
}

func TestEngine_DeriveAll(t *testing.T) {
	now := time.Now()
	engine, clock, watches := createTestEngine(t, now)
	clock.Touch(now)
	watches.Watch("b", "viewer")

	devices := []*entity.Device{
		{DeviceID: "a", RequestedAwake: true, LastUpdateAt: now},
		{DeviceID: "b", RequestedAwake: false, LastUpdateAt: now.Add(-time.Hour)},
	}

	states := engine.DeriveAll(devices)
	assert.Len(t, states, 2)
	assert.True(t, states[0].EffectiveAwake)
	assert.Equal(t, entity.StatusOnline, states[0].Status)
	assert.True(t, states[1].EffectiveAwake) // watched wins over everything
	assert.Equal(t, entity.StatusOffline, states[1].Status)
}
