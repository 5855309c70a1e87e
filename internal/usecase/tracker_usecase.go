// Package usecase defines the application-facing interfaces of the tracker.
package usecase

import (
	"context"

	"fleettrack/internal/domain/entity"
)

// LocationUpdateInput represents an incoming location fix. Optional fields
// that are absent replace the stored value with null; only the protected
// requestedAwake/alarmActive flags survive an update untouched.
type LocationUpdateInput struct {
	DeviceID    string                `json:"deviceId"`
	Latitude    float64               `json:"lat"`
	Longitude   float64               `json:"lon"`
	Speed       *float64              `json:"speed,omitempty"`
	Accuracy    *float64              `json:"accuracy,omitempty"`
	Battery     *float64              `json:"battery,omitempty"`
	DisplayName *string               `json:"name,omitempty"`
	PushToken   *string               `json:"pushToken,omitempty"`
	Geofence    *entity.GeofenceEvent `json:"geofence,omitempty"`
}

// TrackerUsecase defines the device registry operations exposed to transports.
type TrackerUsecase interface {
	// UpsertLocation accepts a location fix, creating the device record on
	// first contact. Broadcast and push side effects are best-effort and
	// never fail the call.
	UpsertLocation(ctx context.Context, input *LocationUpdateInput) (*entity.DeviceState, error)

	// GetDevice returns a single device joined with derived presence state.
	GetDevice(ctx context.Context, deviceID string) (*entity.DeviceState, error)

	// ListDevices returns every device joined with derived state. Every call
	// counts as fleet-map activity.
	ListDevices(ctx context.Context) ([]*entity.DeviceState, error)

	// WakeAll sets requestedAwake for the whole fleet and records the
	// app-foreground signal.
	WakeAll(ctx context.Context) error

	// Sleep clears requestedAwake for one device.
	Sleep(ctx context.Context, deviceID string) error

	// Watch registers a viewer observing one device. The device may not have
	// reported yet.
	Watch(ctx context.Context, deviceID, watcherID string) error

	// Unwatch removes a viewer's observation. Unknown edges are a no-op.
	Unwatch(ctx context.Context, deviceID, watcherID string) error

	// Ring raises the device's alarm and pushes a silent alarm message to it.
	Ring(ctx context.Context, deviceID string) error

	// ResetAlarm clears the alarm and pushes a silent stop message.
	ResetAlarm(ctx context.Context, deviceID string) error
}
