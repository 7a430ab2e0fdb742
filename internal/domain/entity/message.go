// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FamilyMessage is a short text message sent by a family account to a
// device, stored until the device acknowledges it.
type FamilyMessage struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the message.
	DeviceID   string    `json:"device_id"`   // The ID of the target device.
	AccountID  int64     `json:"account_id"`  // The chat account that sent the message.
	SenderName string    `json:"sender_name"` // Display name of the sender at send time.
	Body       string    `json:"body"`        // The message text.
	SentAt     time.Time `json:"sent_at"`     // Timestamp of when the message was relayed.
	Read       bool      `json:"read"`        // True once the device has acknowledged consumption.
}
