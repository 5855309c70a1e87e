package service

import (
	"context"
)

// Push message types understood by the mobile client.
const (
	PushTypeGeofenceAlert = "geofence_alert"
	PushTypeAlarm         = "alarm"
	PushTypeStopAlarm     = "stop_alarm"
)

// PushMessage is the payload handed to the push gateway. When Silent is set
// the gateway must omit the OS-visible notification so the receiving app's
// background handler processes the message instead of the notification tray.
type PushMessage struct {
	Type   string
	Title  string
	Body   string
	Silent bool
}

// NotificationService defines the interface for the push notification gateway.
// Delivery is best-effort; callers never propagate send errors to the request
// that triggered them.
type NotificationService interface {
	// Send delivers a push message to a single device token.
	Send(ctx context.Context, token string, msg *PushMessage) error

	// SendMulticast delivers a push message to multiple device tokens
	// (max 500). Returns success count, failure count and the tokens the
	// gateway reported as invalid or unregistered.
	SendMulticast(ctx context.Context, tokens []string, msg *PushMessage) (successCount, failureCount int, invalidTokens []string, err error)
}
