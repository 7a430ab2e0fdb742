package service

import (
	"context"
)

// PushService defines the interface for out-of-band push notifications,
// used as a fallback when a device has no live connection.
type PushService interface {
	// SendDataPush sends a small data-only push to a single device token.
	SendDataPush(ctx context.Context, token string, data map[string]string) error
}
