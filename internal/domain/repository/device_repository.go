// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/ogarmar/Compa/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceCodeTaken is returned when the device code unique constraint is violated.
	ErrDeviceCodeTaken = errors.New("device code already taken")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice creates the device on first contact or refreshes its code,
	// FCM token and last-connected timestamp on reconnect.
	UpsertDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its stable identifier.
	FindDeviceByID(ctx context.Context, deviceID string) (*entity.Device, error)

	// FindDeviceByCode retrieves a device by its short pairing code.
	FindDeviceByCode(ctx context.Context, deviceCode string) (*entity.Device, error)

	// ListDeviceCodes returns every code currently issued, for collision checks.
	ListDeviceCodes(ctx context.Context) ([]string, error)
}
