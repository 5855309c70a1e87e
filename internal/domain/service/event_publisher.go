package service

import (
	"context"
	"time"
)

// LocationEvent is the downstream-facing record of an accepted location
// update, published for async consumers (analytics, archival).
type LocationEvent struct {
	DeviceID     string    `json:"device_id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Speed        *float64  `json:"speed,omitempty"`
	Battery      *float64  `json:"battery,omitempty"`
	Status       string    `json:"status"`
	GeofenceName string    `json:"geofence_name,omitempty"`
	ReceivedAt   time.Time `json:"received_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishLocationEvent publishes an accepted location update for async
	// downstream processing.
	PublishLocationEvent(ctx context.Context, event *LocationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
