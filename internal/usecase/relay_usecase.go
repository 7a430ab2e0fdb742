package usecase

import (
	"context"

	"github.com/ogarmar/Compa/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessage carries one outbound family message addressed by alias.
type SendMessage struct {
	AccountID  int64  `json:"account_id"`
	SenderName string `json:"sender_name"`
	Alias      string `json:"alias"`
	Body       string `json:"body"`
}

// RelayUsecase moves messages from family accounts to devices with
// store-and-forward semantics: a message is always persisted first, and
// live delivery is best-effort on top.
type RelayUsecase interface {
	// Send persists a message for the aliased device and notifies it if
	// reachable. The message survives whether or not delivery succeeds.
	Send(ctx context.Context, msg *SendMessage) (*entity.FamilyMessage, error)

	// FetchUnread returns a device's undelivered messages, oldest first.
	FetchUnread(ctx context.Context, deviceID string) ([]*entity.FamilyMessage, error)

	// MarkRead acknowledges that the device has shown a message.
	MarkRead(ctx context.Context, messageID uuid.UUID) error
}
