package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrChannelClosed is returned by a DeviceChannel whose connection is gone.
// Callers treat it as "device unreachable", never as a fatal condition.
var ErrChannelClosed = errors.New("device channel closed")

// DeviceChannel is the outbound half of one live device connection. The
// coordinator and relay push JSON events through it without knowing the
// underlying transport.
type DeviceChannel interface {
	// Push serializes event as JSON and writes it to the device.
	Push(ctx context.Context, event any) error
}

// AccountNotifier sends a plain text message to a family chat account. The
// bot transport implements it; the coordinator and relay stay
// transport-agnostic.
type AccountNotifier interface {
	NotifyAccount(ctx context.Context, accountID int64, text string) error
}
