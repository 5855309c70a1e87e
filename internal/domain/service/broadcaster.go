package service

import (
	"fleettrack/internal/domain/entity"
)

// Broadcaster fans an accepted location update out to every connected live
// viewer. Sends are non-blocking; a viewer that cannot keep up loses frames
// rather than stalling the update path.
type Broadcaster interface {
	BroadcastState(state *entity.DeviceState)
}
