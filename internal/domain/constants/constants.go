// Package constants holds shared identifiers used across layers.
package constants

// Pub/Sub provider names accepted by the pubsub.provider config key.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)
