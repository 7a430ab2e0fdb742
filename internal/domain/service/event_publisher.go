package service

import (
	"context"
)

// Pairing event types published to the event stream.
const (
	EventConnectionApproved = "connection_approved"
	EventConnectionRejected = "connection_rejected"
	EventConnectionRemoved  = "connection_removed"
	EventMessageRelayed     = "message_relayed"
)

// PairingEvent represents a pairing-lifecycle or relay event emitted for
// downstream consumers (analytics, audit).
type PairingEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	DeviceID  string `json:"device_id"`
	AccountID int64  `json:"account_id"`
	Alias     string `json:"alias,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPairingEvent publishes a pairing event for async processing.
	// Delivery is best-effort; callers log and continue on failure.
	PublishPairingEvent(ctx context.Context, event *PairingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
