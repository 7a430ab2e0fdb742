package usecase

import (
	"context"

	"github.com/ogarmar/Compa/internal/domain/entity"
)

// DeviceRegistration carries the fields a device announces on connect.
type DeviceRegistration struct {
	DeviceID string `json:"device_id"` // Empty on very first contact; the server then assigns one.
	FCMToken string `json:"fcm_token"` // Optional push token for the offline fallback.
}

// RegisteredDevice is the full onboarding state returned after registration,
// everything the device needs to render its pairing screen.
type RegisteredDevice struct {
	Device      *entity.Device       `json:"device"`
	PairingQR   []byte               `json:"pairing_qr,omitempty"` // PNG encoding the connect deep link; nil when rendering failed.
	Connections []*entity.Connection `json:"connections"`          // Accounts already paired with this device.
}

// ConnectRequest carries a family account's attempt to pair with a device.
type ConnectRequest struct {
	DeviceCode string               `json:"device_code"`
	Requester  entity.RequesterInfo `json:"requester"`
}

// ConnectResult reports the outcome of a connect attempt. Exactly one of
// AlreadyPaired or RequestID is meaningful.
type ConnectResult struct {
	AlreadyPaired bool               `json:"already_paired"`
	Connection    *entity.Connection `json:"connection,omitempty"` // Set when AlreadyPaired.
	RequestID     string             `json:"request_id,omitempty"` // Set when a fresh request was forwarded.
	DeviceID      string             `json:"device_id,omitempty"`
}

// ConnectionDecision is the device's answer to a pending pairing request.
type ConnectionDecision struct {
	RequestID string `json:"request_id"`
	Approved  bool   `json:"approved"`
}

// ConnectionOutcome reports what a decision settled.
type ConnectionOutcome struct {
	Request    *entity.PendingConnectionRequest `json:"request"`
	Connection *entity.Connection               `json:"connection,omitempty"` // Set when approved.
}

// PairingUsecase coordinates the device pairing lifecycle: registration,
// code-based discovery, the approval handshake and pairing maintenance.
type PairingUsecase interface {
	// RegisterDevice records a device announcing itself, issuing a stable id
	// and a fresh pairing code on first contact.
	RegisterDevice(ctx context.Context, registration *DeviceRegistration) (*RegisteredDevice, error)

	// RequestConnection resolves a device code and forwards a pairing request
	// to the live device. Pairing an already-connected pair is idempotent.
	RequestConnection(ctx context.Context, req *ConnectRequest) (*ConnectResult, error)

	// RespondConnection settles a pending request with the device's decision.
	// Each request can be settled at most once.
	RespondConnection(ctx context.Context, decision *ConnectionDecision) (*ConnectionOutcome, error)

	// SetAlias labels a pairing. Target is a device code or an existing alias.
	SetAlias(ctx context.Context, accountID int64, target, alias string) (*entity.Connection, error)

	// Disconnect removes the pairing the account addresses by alias.
	Disconnect(ctx context.Context, accountID int64, alias string) (*entity.Connection, error)

	// SweepExpired discards expired pending requests and notifies their
	// requesters. Returns how many were discarded.
	SweepExpired(ctx context.Context) int
}
