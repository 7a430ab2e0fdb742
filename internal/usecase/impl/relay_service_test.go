package impl

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ogarmar/Compa/internal/domain/entity"
	domainerrors "github.com/ogarmar/Compa/internal/domain/errors"
	"github.com/ogarmar/Compa/internal/domain/repository"
	"github.com/ogarmar/Compa/internal/domain/service"
	"github.com/ogarmar/Compa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRelayService_Send_LiveDelivery(t *testing.T) {
	fx := createTestRelayService(t)

	ctx := context.Background()
	conn := &entity.Connection{ID: uuid.New(), AccountID: 42, DeviceID: "device-123", Alias: "grandma"}

	fx.connRepo.EXPECT().
		ResolveAlias(ctx, int64(42), "grandma").
		Return(conn, nil)

	fx.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.FamilyMessage")).
		Run(func(_ context.Context, message *entity.FamilyMessage) {
			assert.Equal(t, "device-123", message.DeviceID)
			assert.Equal(t, "Good morning!", message.Body)
			assert.False(t, message.Read)
		}).
		Return(nil)

	channel := newCapturingChannel()
	fx.registry.Register("device-123", channel)

	fx.publisher.EXPECT().
		PublishPairingEvent(ctx, mock.MatchedBy(func(event *service.PairingEvent) bool {
			return event.Type == service.EventMessageRelayed && event.MessageID != ""
		})).
		Return(nil)

	message, err := fx.service.Send(ctx, &usecase.SendMessage{
		AccountID:  42,
		SenderName: "Maria",
		Alias:      "grandma",
		Body:       "Good morning!",
	})
	require.NoError(t, err)
	assert.Equal(t, "device-123", message.DeviceID)

	require.Len(t, channel.events, 1)
	event, ok := channel.events[0].(*usecase.NewMessageNotificationEvent)
	require.True(t, ok)
	assert.Equal(t, usecase.EventTypeNewMessageNotification, event.Type)
	assert.Equal(t, message.ID.String(), event.MessageID)
}

func TestRelayService_Send_LiveNotificationOmitsContent(t *testing.T) {
	fx := createTestRelayService(t)

	ctx := context.Background()
	conn := &entity.Connection{ID: uuid.New(), AccountID: 42, DeviceID: "device-123", Alias: "grandma"}

	fx.connRepo.EXPECT().
		ResolveAlias(ctx, int64(42), "grandma").
		Return(conn, nil)

	fx.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.FamilyMessage")).
		Return(nil)

	channel := newCapturingChannel()
	fx.registry.Register("device-123", channel)

	fx.publisher.EXPECT().
		PublishPairingEvent(ctx, mock.Anything).
		Return(nil)

	_, err := fx.service.Send(ctx, &usecase.SendMessage{
		AccountID:  42,
		SenderName: "Maria",
		Alias:      "grandma",
		Body:       "private health update",
	})
	require.NoError(t, err)

	// The wake-up frame must never carry the message content or sender;
	// the device pulls those over the unread endpoint.
	require.Len(t, channel.events, 1)
	frame, err := json.Marshal(channel.events[0])
	require.NoError(t, err)
	assert.NotContains(t, string(frame), "private health update")
	assert.NotContains(t, string(frame), "Maria")
	assert.NotContains(t, string(frame), "body")
}

func TestRelayService_Send_OfflinePushFallback(t *testing.T) {
	fx := createTestRelayService(t)

	ctx := context.Background()
	conn := &entity.Connection{ID: uuid.New(), AccountID: 42, DeviceID: "device-123", Alias: "grandma"}
	device := &entity.Device{DeviceID: "device-123", FCMToken: "fcm-token"}

	fx.connRepo.EXPECT().
		ResolveAlias(ctx, int64(42), "grandma").
		Return(conn, nil)

	fx.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.FamilyMessage")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "device-123").
		Return(device, nil)

	fx.pushSvc.EXPECT().
		SendDataPush(ctx, "fcm-token", mock.MatchedBy(func(data map[string]string) bool {
			return data["type"] == usecase.EventTypeNewMessageNotification && data["message_id"] != ""
		})).
		Return(nil)

	fx.publisher.EXPECT().
		PublishPairingEvent(ctx, mock.Anything).
		Return(nil)

	message, err := fx.service.Send(ctx, &usecase.SendMessage{
		AccountID:  42,
		SenderName: "Maria",
		Alias:      "grandma",
		Body:       "hello",
	})
	require.NoError(t, err)
	assert.NotNil(t, message)
}

func TestRelayService_Send_OfflineWithoutToken(t *testing.T) {
	fx := createTestRelayService(t)

	ctx := context.Background()
	conn := &entity.Connection{ID: uuid.New(), AccountID: 42, DeviceID: "device-123", Alias: "grandma"}

	fx.connRepo.EXPECT().
		ResolveAlias(ctx, int64(42), "grandma").
		Return(conn, nil)

	fx.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.FamilyMessage")).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "device-123").
		Return(&entity.Device{DeviceID: "device-123"}, nil)

	fx.publisher.EXPECT().
		PublishPairingEvent(ctx, mock.Anything).
		Return(nil)

	// No push expectation: the message simply waits for the next connection
	message, err := fx.service.Send(ctx, &usecase.SendMessage{
		AccountID: 42,
		Alias:     "grandma",
		Body:      "hello",
	})
	require.NoError(t, err)
	assert.NotNil(t, message)
}

func TestRelayService_Send_LiveFailureStillPersists(t *testing.T) {
	fx := createTestRelayService(t)

	ctx := context.Background()
	conn := &entity.Connection{ID: uuid.New(), AccountID: 42, DeviceID: "device-123", Alias: "grandma"}

	fx.connRepo.EXPECT().
		ResolveAlias(ctx, int64(42), "grandma").
		Return(conn, nil)

	fx.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.FamilyMessage")).
		Return(nil)

	channel := newCapturingChannel()
	channel.err = assert.AnError
	fx.registry.Register("device-123", channel)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "device-123").
		Return(&entity.Device{DeviceID: "device-123"}, nil)

	fx.publisher.EXPECT().
		PublishPairingEvent(ctx, mock.Anything).
		Return(nil)

	message, err := fx.service.Send(ctx, &usecase.SendMessage{
		AccountID: 42,
		Alias:     "grandma",
		Body:      "hello",
	})
	require.NoError(t, err)
	assert.NotNil(t, message)
}

func TestRelayService_Send_UnknownAlias(t *testing.T) {
	fx := createTestRelayService(t)

	ctx := context.Background()

	fx.connRepo.EXPECT().
		ResolveAlias(ctx, int64(42), "nobody").
		Return(nil, repository.ErrConnectionNotFound)

	_, err := fx.service.Send(ctx, &usecase.SendMessage{
		AccountID: 42,
		Alias:     "nobody",
		Body:      "hello",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownAlias))
}

func TestRelayService_FetchUnread(t *testing.T) {
	fx := createTestRelayService(t)

	ctx := context.Background()
	messages := []*entity.FamilyMessage{
		{ID: uuid.New(), DeviceID: "device-123", Body: "first"},
		{ID: uuid.New(), DeviceID: "device-123", Body: "second"},
	}

	fx.messageRepo.EXPECT().
		ListUnread(ctx, "device-123").
		Return(messages, nil)

	unread, err := fx.service.FetchUnread(ctx, "device-123")
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, "first", unread[0].Body)
}

func TestRelayService_MarkRead(t *testing.T) {
	fx := createTestRelayService(t)

	ctx := context.Background()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().
		MarkRead(ctx, messageID).
		Return(nil)

	err := fx.service.MarkRead(ctx, messageID)
	require.NoError(t, err)
}

func TestRelayService_MarkRead_NotFound(t *testing.T) {
	fx := createTestRelayService(t)

	ctx := context.Background()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().
		MarkRead(ctx, messageID).
		Return(repository.ErrMessageNotFound)

	err := fx.service.MarkRead(ctx, messageID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageNotFound))
}
