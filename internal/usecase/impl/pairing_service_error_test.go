package impl

import (
	"context"
	"testing"

	"github.com/ogarmar/Compa/internal/domain/entity"
	domainerrors "github.com/ogarmar/Compa/internal/domain/errors"
	"github.com/ogarmar/Compa/internal/domain/repository"
	"github.com/ogarmar/Compa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPairingService_RequestConnection_UnknownCode(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindDeviceByCode(ctx, "000000").
		Return(nil, repository.ErrDeviceNotFound)

	_, err := fx.service.RequestConnection(ctx, &usecase.ConnectRequest{
		DeviceCode: "000000",
		Requester:  entity.RequesterInfo{AccountID: 42},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceCodeNotFound))
}

func TestPairingService_RequestConnection_DeviceOffline(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	device := &entity.Device{DeviceID: "device-123", DeviceCode: "402913"}

	fx.deviceRepo.EXPECT().
		FindDeviceByCode(ctx, "402913").
		Return(device, nil)

	fx.connRepo.EXPECT().
		FindConnection(ctx, int64(42), "device-123").
		Return(nil, repository.ErrConnectionNotFound)

	_, err := fx.service.RequestConnection(ctx, &usecase.ConnectRequest{
		DeviceCode: "402913",
		Requester:  entity.RequesterInfo{AccountID: 42},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceUnreachable))
	assert.Equal(t, 0, fx.pending.Len())
}

func TestPairingService_RequestConnection_PushFailureRollsBack(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	device := &entity.Device{DeviceID: "device-123", DeviceCode: "402913"}

	fx.deviceRepo.EXPECT().
		FindDeviceByCode(ctx, "402913").
		Return(device, nil)

	fx.connRepo.EXPECT().
		FindConnection(ctx, int64(42), "device-123").
		Return(nil, repository.ErrConnectionNotFound)

	channel := newCapturingChannel()
	channel.err = assert.AnError
	fx.registry.Register("device-123", channel)

	_, err := fx.service.RequestConnection(ctx, &usecase.ConnectRequest{
		DeviceCode: "402913",
		Requester:  entity.RequesterInfo{AccountID: 42},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTransportFailure))

	// The reservation must not outlive the failed push
	assert.Equal(t, 0, fx.pending.Len())
}

func TestPairingService_RespondConnection_UnknownRequest(t *testing.T) {
	fx := createTestPairingService(t)

	_, err := fx.service.RespondConnection(context.Background(), &usecase.ConnectionDecision{
		RequestID: "no-such-request",
		Approved:  true,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestPairingService_RespondConnection_SettlesOnlyOnce(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	fx.pending.Put(&entity.PendingConnectionRequest{
		RequestID: "req-1",
		AccountID: 42,
		DeviceID:  "device-123",
	})

	fx.notifier.EXPECT().
		NotifyAccount(ctx, int64(42), mock.AnythingOfType("string")).
		Return(nil).
		Once()

	fx.publisher.EXPECT().
		PublishPairingEvent(ctx, mock.Anything).
		Return(nil).
		Once()

	_, err := fx.service.RespondConnection(ctx, &usecase.ConnectionDecision{RequestID: "req-1", Approved: false})
	require.NoError(t, err)

	// The answered request is spent; a second decision finds nothing
	_, err = fx.service.RespondConnection(ctx, &usecase.ConnectionDecision{RequestID: "req-1", Approved: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestPairingService_SetAlias_NotPaired(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	device := &entity.Device{DeviceID: "device-123", DeviceCode: "402913"}

	fx.deviceRepo.EXPECT().
		FindDeviceByCode(ctx, "402913").
		Return(device, nil)

	fx.connRepo.EXPECT().
		FindConnection(ctx, int64(42), "device-123").
		Return(nil, repository.ErrConnectionNotFound)

	_, err := fx.service.SetAlias(ctx, 42, "402913", "grandma")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotPaired))
}

func TestPairingService_SetAlias_UnknownTarget(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindDeviceByCode(ctx, "nothing").
		Return(nil, repository.ErrDeviceNotFound)

	fx.connRepo.EXPECT().
		ResolveAlias(ctx, int64(42), "nothing").
		Return(nil, repository.ErrConnectionNotFound)

	_, err := fx.service.SetAlias(ctx, 42, "nothing", "grandma")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotPaired))
}

func TestPairingService_SetAlias_AliasTaken(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	device := &entity.Device{DeviceID: "device-123", DeviceCode: "402913"}
	conn := &entity.Connection{ID: uuid.New(), AccountID: 42, DeviceID: "device-123"}

	fx.deviceRepo.EXPECT().
		FindDeviceByCode(ctx, "402913").
		Return(device, nil)

	fx.connRepo.EXPECT().
		FindConnection(ctx, int64(42), "device-123").
		Return(conn, nil)

	fx.connRepo.EXPECT().
		UpdateAlias(ctx, int64(42), "device-123", "grandma").
		Return(nil, repository.ErrAliasInUse)

	_, err := fx.service.SetAlias(ctx, 42, "402913", "grandma")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAliasConflict))
}

func TestPairingService_Disconnect_UnknownAlias(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()

	fx.connRepo.EXPECT().
		ResolveAlias(ctx, int64(42), "nobody").
		Return(nil, repository.ErrConnectionNotFound)

	_, err := fx.service.Disconnect(ctx, 42, "nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownAlias))
}
