// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Device represents one companion client installation.
type Device struct {
	DeviceID        string    `json:"device_id"`         // Stable, opaque identifier assigned at first contact.
	DeviceCode      string    `json:"device_code"`       // Short human-typable code used only to initiate a pairing.
	FCMToken        string    `json:"fcm_token"`         // Optional FCM token for offline push fallback; empty when unset.
	LastConnectedAt time.Time `json:"last_connected_at"` // Timestamp of the most recent transport handshake.
	CreatedAt       time.Time `json:"created_at"`        // Timestamp of when this device was first registered.
	UpdatedAt       time.Time `json:"updated_at"`        // Timestamp of the last modification.
}
