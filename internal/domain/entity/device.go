// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Online statuses derived from the age of a device's last accepted fix.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Device represents the latest known state of a tracked device. One row per
// device id; the id is the sole identity and is stored in canonical form.
type Device struct {
	DeviceID       string    `json:"deviceId"`
	Latitude       float64   `json:"lat"`
	Longitude      float64   `json:"lon"`
	Speed          *float64  `json:"speed,omitempty"`    // meters per second
	Accuracy       *float64  `json:"accuracy,omitempty"` // meters
	Battery        *float64  `json:"battery,omitempty"`  // percent
	DisplayName    *string   `json:"name,omitempty"`
	PushToken      *string   `json:"-"` // FCM token, never exposed to clients
	RequestedAwake bool      `json:"requestedAwake"`
	AlarmActive    bool      `json:"alarmActive"`
	LastUpdateAt   time.Time `json:"lastUpdateAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

// DeviceState is a Device joined with the derived presence fields. The derived
// fields are computed per read and never stored.
type DeviceState struct {
	Device
	IsWatched      bool   `json:"isWatched"`
	EffectiveAwake bool   `json:"effectiveAwake"`
	Status         string `json:"status"`
}

// GeofenceEvent is a boundary crossing computed by the client and forwarded
// opaquely alongside a location update.
type GeofenceEvent struct {
	Name       string `json:"name"`
	Transition string `json:"transition"` // "enter" or "exit"
	Message    string `json:"message"`
}

// CanonicalDeviceID normalizes a device identifier to the canonical lowercase
// form used for every lookup and write.
func CanonicalDeviceID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
