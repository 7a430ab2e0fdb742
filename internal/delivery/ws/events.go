package ws

import (
	"github.com/ogarmar/Compa/internal/domain/entity"
)

// Inbound event types a device may send over its socket.
const (
	eventRegister           = "register"
	eventConnectionResponse = "connection_response"
	eventAckMessage         = "ack_message"
)

// inboundEvent is the envelope for every device-to-server frame. Only the
// fields matching Type are populated.
type inboundEvent struct {
	Type string `json:"type"`

	// register
	DeviceID string `json:"device_id,omitempty"`
	FCMToken string `json:"fcm_token,omitempty"`

	// connection_response
	RequestID string `json:"request_id,omitempty"`
	Approved  bool   `json:"approved,omitempty"`

	// ack_message
	MessageID string `json:"message_id,omitempty"`
}

// deviceInfoEvent answers a register frame with everything the device needs
// to render its pairing screen.
type deviceInfoEvent struct {
	Type        string           `json:"type"`
	DeviceID    string           `json:"device_id"`
	DeviceCode  string           `json:"device_code"`
	PairingQR   []byte           `json:"pairing_qr,omitempty"` // PNG, base64 in JSON.
	Connections []connectionInfo `json:"connections"`
}

// connectionInfo is the device-facing view of one paired account.
type connectionInfo struct {
	AccountID int64  `json:"account_id"`
	Alias     string `json:"alias,omitempty"`
}

// errorEvent reports a failed inbound operation without closing the socket.
type errorEvent struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toConnectionInfos(connections []*entity.Connection) []connectionInfo {
	infos := make([]connectionInfo, 0, len(connections))
	for _, conn := range connections {
		infos = append(infos, connectionInfo{
			AccountID: conn.AccountID,
			Alias:     conn.Alias,
		})
	}

	return infos
}
