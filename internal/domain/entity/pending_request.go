// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// RequesterInfo carries the display metadata of the account asking to pair,
// shown on the device so its owner can decide who to approve.
type RequesterInfo struct {
	AccountID int64  `json:"account_id"` // The chat account issuing the request.
	Username  string `json:"username"`   // The account's handle, if any.
	FullName  string `json:"full_name"`  // The account's display name.
}

// PendingConnectionRequest is an ephemeral, in-memory pairing proposal
// awaiting device-side approval or rejection. It is never persisted.
type PendingConnectionRequest struct {
	RequestID  string        `json:"request_id"`  // Opaque, unguessable token.
	AccountID  int64         `json:"account_id"`  // The requesting chat account.
	DeviceID   string        `json:"device_id"`   // The target device.
	DeviceCode string        `json:"device_code"` // The code the requester typed, echoed in notifications.
	Requester  RequesterInfo `json:"requester"`   // Display metadata shown on the device.
	CreatedAt  time.Time     `json:"created_at"`  // Timestamp used for expiry.
}
