package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/ogarmar/Compa/internal/domain/entity"
	domainerrors "github.com/ogarmar/Compa/internal/domain/errors"
	"github.com/ogarmar/Compa/internal/domain/repository"
	"github.com/ogarmar/Compa/internal/domain/service"
	"github.com/ogarmar/Compa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// relayService implements the RelayUsecase interface.
type relayService struct {
	messageRepo repository.MessageRepository
	connRepo    repository.ConnectionRepository
	deviceRepo  repository.DeviceRepository
	registry    service.ConnectionRegistry
	pushSvc     service.PushService
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewRelayService is the constructor for relayService. pushSvc may be nil
// when no push provider is configured; offline devices then wait for their
// next connection.
func NewRelayService(
	messageRepo repository.MessageRepository,
	connRepo repository.ConnectionRepository,
	deviceRepo repository.DeviceRepository,
	registry service.ConnectionRegistry,
	pushSvc service.PushService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.RelayUsecase {
	return &relayService{
		messageRepo: messageRepo,
		connRepo:    connRepo,
		deviceRepo:  deviceRepo,
		registry:    registry,
		pushSvc:     pushSvc,
		publisher:   publisher,
		logger:      logger,
	}
}

// Send persists a message for the aliased device, then attempts live
// delivery. Persistence is the contract; delivery is opportunistic.
func (srv *relayService) Send(ctx context.Context, msg *usecase.SendMessage) (*entity.FamilyMessage, error) {
	conn, err := srv.connRepo.ResolveAlias(ctx, msg.AccountID, msg.Alias)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnknownAlias, msg.Alias)
		}

		return nil, errors.Wrap(err, "failed to resolve alias")
	}

	message := &entity.FamilyMessage{
		ID:         uuid.New(),
		DeviceID:   conn.DeviceID,
		AccountID:  msg.AccountID,
		SenderName: msg.SenderName,
		Body:       msg.Body,
		SentAt:     time.Now(),
	}

	if err := srv.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to store message")
	}

	srv.deliver(ctx, message)

	srv.publishEvent(ctx, &service.PairingEvent{
		Type:      service.EventMessageRelayed,
		DeviceID:  conn.DeviceID,
		AccountID: msg.AccountID,
		Alias:     msg.Alias,
		MessageID: message.ID.String(),
	})

	srv.logger.Info("Message relayed",
		"messageID", message.ID,
		"deviceID", conn.DeviceID,
		"accountID", msg.AccountID,
	)

	return message, nil
}

// deliver pushes a stored message toward the device: over the live channel
// when connected, through the push provider otherwise. Failures are logged
// and absorbed; the message stays queued either way.
func (srv *relayService) deliver(ctx context.Context, message *entity.FamilyMessage) {
	if channel, ok := srv.registry.Get(message.DeviceID); ok {
		// Wake-up only; the device fetches the content itself, so nothing
		// sensitive crosses the live channel.
		event := &usecase.NewMessageNotificationEvent{
			Type:      usecase.EventTypeNewMessageNotification,
			MessageID: message.ID.String(),
		}
		err := channel.Push(ctx, event)
		if err == nil {
			return
		}
		srv.logger.Warn("Live delivery failed, message stays queued",
			"messageID", message.ID,
			"deviceID", message.DeviceID,
			"error", err,
		)
	}

	if srv.pushSvc == nil {
		return
	}

	device, err := srv.deviceRepo.FindDeviceByID(ctx, message.DeviceID)
	if err != nil || device.FCMToken == "" {
		return
	}

	data := map[string]string{
		"type":       usecase.EventTypeNewMessageNotification,
		"message_id": message.ID.String(),
	}
	if err := srv.pushSvc.SendDataPush(ctx, device.FCMToken, data); err != nil {
		srv.logger.Warn("Push fallback failed, message stays queued",
			"messageID", message.ID,
			"deviceID", message.DeviceID,
			"error", err,
		)
	}
}

// FetchUnread returns a device's undelivered messages, oldest first.
func (srv *relayService) FetchUnread(ctx context.Context, deviceID string) ([]*entity.FamilyMessage, error) {
	messages, err := srv.messageRepo.ListUnread(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unread messages")
	}

	return messages, nil
}

// MarkRead acknowledges that the device has shown a message.
func (srv *relayService) MarkRead(ctx context.Context, messageID uuid.UUID) error {
	if err := srv.messageRepo.MarkRead(ctx, messageID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.Wrap(domainerrors.ErrMessageNotFound, messageID.String())
		}

		return errors.Wrap(err, "failed to mark message read")
	}

	return nil
}

// publishEvent emits a relay event to the stream, best-effort.
func (srv *relayService) publishEvent(ctx context.Context, event *service.PairingEvent) {
	if err := srv.publisher.PublishPairingEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish relay event", "type", event.Type, "error", err)
	}
}
