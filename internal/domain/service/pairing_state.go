package service

import (
	"github.com/ogarmar/Compa/internal/domain/entity"
)

// ConnectionRegistry tracks which devices currently hold a live transport
// connection. Implementations are process-local.
type ConnectionRegistry interface {
	// Register records ch as the device's current channel, replacing any prior one.
	Register(deviceID string, ch DeviceChannel)

	// Unregister removes the device's entry only if ch is still current.
	Unregister(deviceID string, ch DeviceChannel)

	// Get returns the device's current channel, if any.
	Get(deviceID string) (DeviceChannel, bool)
}

// PendingRequestStore holds pairing requests awaiting device-side approval.
// Entries are ephemeral and expire after a bounded window.
type PendingRequestStore interface {
	// Put stores a request under its id.
	Put(req *entity.PendingConnectionRequest)

	// Take atomically removes and returns the request, or nil if it is
	// absent, already taken, or expired. At most one caller wins.
	Take(requestID string) *entity.PendingConnectionRequest

	// Sweep discards and returns every expired entry.
	Sweep() []*entity.PendingConnectionRequest
}
