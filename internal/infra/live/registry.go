// Package live tracks which devices currently hold an open transport
// connection. The registry is process-local and empty at start; devices
// re-announce after a restart.
package live

import (
	"sync"

	"github.com/ogarmar/Compa/internal/domain/service"
)

// Registry maps a device id to the outbound half of its live connection.
// A device reconnecting overwrites its prior entry (last writer wins); the
// stale channel's sends fail and are ignored by callers.
type Registry struct {
	mu       sync.RWMutex
	channels map[string]service.DeviceChannel
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		channels: make(map[string]service.DeviceChannel),
	}
}

// Register records ch as the device's current channel, replacing any prior one.
func (r *Registry) Register(deviceID string, ch service.DeviceChannel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.channels[deviceID] = ch
}

// Unregister removes the device's entry, but only if ch is still the current
// channel. A reconnect that already replaced the entry is left untouched.
func (r *Registry) Unregister(deviceID string, ch service.DeviceChannel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.channels[deviceID]; ok && current == ch {
		delete(r.channels, deviceID)
	}
}

// Get returns the device's current channel, if any.
func (r *Registry) Get(deviceID string) (service.DeviceChannel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.channels[deviceID]

	return ch, ok
}

// Len reports how many devices are currently connected.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.channels)
}
