package presence

import (
	"time"

	"fleettrack/internal/domain/entity"
)

// Default windows. A single staleness constant drives the online/offline
// boundary so the classification cannot flap between two different literals.
const (
	DefaultActivityWindow  = 60 * time.Second
	DefaultStalenessWindow = 60 * time.Second
	DefaultWatchTTL        = 5 * time.Minute
)

// Engine derives a device's client-visible state from three inputs: the
// persisted requestedAwake flag, the process-wide activity clock and the
// per-device watch set. Given those inputs the derivation is pure.
//
//	effectiveAwake = (requestedAwake AND appActive) OR isWatched
//
// A device keeps sampling aggressively only while a human plausibly looks at
// the fleet map, or always while someone has specifically selected it.
type Engine struct {
	clock           *ActivityClock
	watches         *WatchRegistry
	activityWindow  time.Duration
	stalenessWindow time.Duration
	now             func() time.Time
}

// NewEngine creates an engine over the given clock and registry. Non-positive
// windows fall back to the defaults.
func NewEngine(clock *ActivityClock, watches *WatchRegistry, activityWindow, stalenessWindow time.Duration) *Engine {
	if activityWindow <= 0 {
		activityWindow = DefaultActivityWindow
	}
	if stalenessWindow <= 0 {
		stalenessWindow = DefaultStalenessWindow
	}

	return &Engine{
		clock:           clock,
		watches:         watches,
		activityWindow:  activityWindow,
		stalenessWindow: stalenessWindow,
		now:             time.Now,
	}
}

// Derive joins a stored device with its derived presence fields.
func (e *Engine) Derive(device *entity.Device) *entity.DeviceState {
	now := e.now()
	watched := e.watches.IsWatched(device.DeviceID)
	appActive := e.clock.ActiveWithin(now, e.activityWindow)

	status := entity.StatusOffline
	if now.Sub(device.LastUpdateAt) < e.stalenessWindow {
		status = entity.StatusOnline
	}

	return &entity.DeviceState{
		Device:         *device,
		IsWatched:      watched,
		EffectiveAwake: (device.RequestedAwake && appActive) || watched,
		Status:         status,
	}
}

// DeriveAll joins a list of stored devices with their derived fields.
func (e *Engine) DeriveAll(devices []*entity.Device) []*entity.DeviceState {
	states := make([]*entity.DeviceState, 0, len(devices))
	for _, device := range devices {
		states = append(states, e.Derive(device))
	}

	return states
}
