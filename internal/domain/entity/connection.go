// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Connection represents one approved pairing between a family chat account
// and a device. It is the many-to-many join entity between accounts and
// devices.
type Connection struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the connection.
	AccountID int64     `json:"account_id"` // Opaque identifier of the remote chat account.
	DeviceID  string    `json:"device_id"`  // The ID of the paired device.
	Alias     string    `json:"alias"`      // Per-account human-readable label; empty until set.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the pairing was approved.
}

// Named reports whether the account has assigned an alias to this pairing.
func (c *Connection) Named() bool {
	return c.Alias != ""
}
