// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import (
	"context"
)

// Delivery is one serving surface of the application (HTTP API, bot poller).
// Serve blocks until the transport shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
