package usecase

import (
	"github.com/ogarmar/Compa/internal/domain/entity"
)

// Event types pushed to a device over its live channel.
const (
	EventTypeConnectionRequest      = "connection_request"
	EventTypeConnectionApproved     = "connection_approved"
	EventTypeConnectionRejected     = "connection_rejected"
	EventTypeConnectionRemoved      = "connection_removed"
	EventTypeNewMessageNotification = "new_message_notification"
)

// ConnectionRequestEvent asks the device to approve or reject a pairing.
type ConnectionRequestEvent struct {
	Type       string               `json:"type"`
	RequestID  string               `json:"request_id"`
	DeviceCode string               `json:"device_code"`
	Requester  entity.RequesterInfo `json:"requester"`
}

// ConnectionApprovedEvent confirms to the device that an approved pairing
// has been recorded.
type ConnectionApprovedEvent struct {
	Type      string `json:"type"`
	AccountID int64  `json:"account_id"`
	FullName  string `json:"full_name"`
}

// ConnectionRejectedEvent confirms to the device that it declined a pairing.
type ConnectionRejectedEvent struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id"`
}

// ConnectionRemovedEvent tells the device an account has unpaired.
type ConnectionRemovedEvent struct {
	Type      string `json:"type"`
	AccountID int64  `json:"account_id"`
}

// NewMessageNotificationEvent announces that a message is waiting. It is a
// wake-up only: the device pulls the content over the unread endpoint, so a
// replayed or duplicated notification is harmless and the body never rides
// the live channel.
type NewMessageNotificationEvent struct {
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
}
