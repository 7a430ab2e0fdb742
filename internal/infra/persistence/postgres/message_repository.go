package postgres

import (
	"context"

	"github.com/ogarmar/Compa/internal/domain/entity"
	domainerrors "github.com/ogarmar/Compa/internal/domain/errors"
	"github.com/ogarmar/Compa/internal/domain/repository"
	"github.com/ogarmar/Compa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// CreateMessage persists a relayed message with read = false.
func (repo *messageRepository) CreateMessage(ctx context.Context, message *entity.FamilyMessage) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid device reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.SentAt = messageM.SentAt

	return nil
}

// ListUnread retrieves a device's unread messages, oldest first.
func (repo *messageRepository) ListUnread(ctx context.Context, deviceID string) ([]*entity.FamilyMessage, error) {
	var messageModels []*model.FamilyMessageModel

	err := withReadRetry(func() error {
		return repo.db.WithContext(ctx).
			Where("device_id = ? AND read = ?", deviceID, false).
			Order("sent_at ASC").
			Find(&messageModels).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unread messages")
	}

	messages := make([]*entity.FamilyMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// MarkRead flips a message to read.
func (repo *messageRepository) MarkRead(ctx context.Context, messageID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FamilyMessageModel{}).
		Where("id = ?", messageID).
		Update("read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark message read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM FamilyMessageModel to a domain FamilyMessage entity.
func toMessageDomain(data *model.FamilyMessageModel) *entity.FamilyMessage {
	if data == nil {
		return nil
	}

	return &entity.FamilyMessage{
		ID:         data.ID,
		DeviceID:   data.DeviceID,
		AccountID:  data.AccountID,
		SenderName: data.SenderName,
		Body:       data.Body,
		SentAt:     data.SentAt,
		Read:       data.Read,
	}
}

// fromMessageDomain converts a domain FamilyMessage entity to a GORM FamilyMessageModel.
func fromMessageDomain(data *entity.FamilyMessage) *model.FamilyMessageModel {
	if data == nil {
		return nil
	}

	return &model.FamilyMessageModel{
		ID:         data.ID,
		DeviceID:   data.DeviceID,
		AccountID:  data.AccountID,
		SenderName: data.SenderName,
		Body:       data.Body,
		SentAt:     data.SentAt,
		Read:       data.Read,
	}
}
