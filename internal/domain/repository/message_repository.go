package repository

import (
	"context"

	"github.com/ogarmar/Compa/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for family-message database operations.
type MessageRepository interface {
	// CreateMessage persists a relayed message with read = false.
	CreateMessage(ctx context.Context, message *entity.FamilyMessage) error

	// ListUnread retrieves a device's unread messages, oldest first.
	ListUnread(ctx context.Context, deviceID string) ([]*entity.FamilyMessage, error)

	// MarkRead flips a message to read.
	// Returns ErrMessageNotFound when no row matched.
	MarkRead(ctx context.Context, messageID uuid.UUID) error
}
