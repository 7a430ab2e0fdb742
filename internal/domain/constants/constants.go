// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider identifiers used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Device pairing defaults.
const (
	// DeviceCodeLength is the number of digits in a pairing code.
	DeviceCodeLength = 6
	// DeviceCodeMaxAttempts bounds random draws before the deterministic fallback.
	DeviceCodeMaxAttempts = 100
)
