// Package lifecycle holds shared start/stop timing constants for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
