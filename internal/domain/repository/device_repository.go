// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"fleettrack/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
//
// UpsertLocation must be a single atomic statement: on conflict it overwrites
// every column except requested_awake and alarm_active, which survive any
// number of location updates and are only written by the Set* operations.
type DeviceRepository interface {
	// UpsertLocation creates or replaces the device's location row. The
	// RequestedAwake/AlarmActive values on the argument are used only when the
	// row does not exist yet; an existing row keeps its stored flags.
	UpsertLocation(ctx context.Context, device *entity.Device) error

	// FindByID retrieves a device by its canonical id.
	FindByID(ctx context.Context, deviceID string) (*entity.Device, error)

	// FindAll retrieves every known device, most recently updated first.
	FindAll(ctx context.Context) ([]*entity.Device, error)

	// SetRequestedAwake writes the persisted awake flag for one device.
	SetRequestedAwake(ctx context.Context, deviceID string, awake bool) error

	// SetAllRequestedAwake writes the persisted awake flag for every device.
	SetAllRequestedAwake(ctx context.Context, awake bool) error

	// SetAlarmActive writes the alarm flag for one device.
	SetAlarmActive(ctx context.Context, deviceID string, active bool) error

	// ListPushTokensExcept returns every stored push token except the given
	// device's own. Devices without a token are skipped.
	ListPushTokensExcept(ctx context.Context, deviceID string) ([]string, error)

	// DeleteStale removes every device whose last update is older than the
	// cutoff and reports how many rows were removed.
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}
