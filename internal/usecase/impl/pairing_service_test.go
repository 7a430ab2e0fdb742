package impl

import (
	"context"
	"testing"
	"time"

	"github.com/ogarmar/Compa/internal/domain/entity"
	"github.com/ogarmar/Compa/internal/domain/repository"
	"github.com/ogarmar/Compa/internal/domain/service"
	"github.com/ogarmar/Compa/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPairingService_RegisterDevice_FirstContact(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, mock.AnythingOfType("string")).
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		ListDeviceCodes(ctx).
		Return([]string{"111111"}, nil)

	fx.codeSvc.EXPECT().
		GenerateCode(map[string]struct{}{"111111": {}}).
		Return("402913")

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	fx.connRepo.EXPECT().
		FindConnectionsByDevice(ctx, mock.AnythingOfType("string")).
		Return([]*entity.Connection{}, nil)

	fx.qrSvc.EXPECT().
		GeneratePairingQR("402913").
		Return([]byte{0x89, 0x50}, nil)

	result, err := fx.service.RegisterDevice(ctx, &usecase.DeviceRegistration{})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Device.DeviceID)
	assert.Equal(t, "402913", result.Device.DeviceCode)
	assert.NotEmpty(t, result.PairingQR)
	assert.Empty(t, result.Connections)
}

func TestPairingService_RegisterDevice_Reconnect(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	existing := &entity.Device{
		DeviceID:   "device-123",
		DeviceCode: "778899",
	}
	conn := &entity.Connection{ID: uuid.New(), AccountID: 42, DeviceID: "device-123", Alias: "grandma"}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "device-123").
		Return(existing, nil)

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) {
			assert.Equal(t, "778899", device.DeviceCode)
			assert.Equal(t, "fresh-token", device.FCMToken)
			assert.False(t, device.LastConnectedAt.IsZero())
		}).
		Return(nil)

	fx.connRepo.EXPECT().
		FindConnectionsByDevice(ctx, "device-123").
		Return([]*entity.Connection{conn}, nil)

	fx.qrSvc.EXPECT().
		GeneratePairingQR("778899").
		Return([]byte("png"), nil)

	result, err := fx.service.RegisterDevice(ctx, &usecase.DeviceRegistration{
		DeviceID: "device-123",
		FCMToken: "fresh-token",
	})
	require.NoError(t, err)
	assert.Equal(t, "778899", result.Device.DeviceCode)
	require.Len(t, result.Connections, 1)
	assert.Equal(t, "grandma", result.Connections[0].Alias)
}

func TestPairingService_RegisterDevice_CodeCollisionRetries(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, mock.AnythingOfType("string")).
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		ListDeviceCodes(ctx).
		Return([]string{}, nil).
		Times(2)

	fx.codeSvc.EXPECT().
		GenerateCode(map[string]struct{}{}).
		Return("123456").
		Times(2)

	// First attempt races into another registration's code
	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDeviceCodeTaken).
		Once()

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil).
		Once()

	fx.connRepo.EXPECT().
		FindConnectionsByDevice(ctx, mock.AnythingOfType("string")).
		Return(nil, nil)

	fx.qrSvc.EXPECT().
		GeneratePairingQR("123456").
		Return([]byte("png"), nil)

	result, err := fx.service.RegisterDevice(ctx, &usecase.DeviceRegistration{})
	require.NoError(t, err)
	assert.Equal(t, "123456", result.Device.DeviceCode)
}

func TestPairingService_RegisterDevice_QRFailureIsNotFatal(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	existing := &entity.Device{DeviceID: "device-123", DeviceCode: "778899"}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "device-123").
		Return(existing, nil)

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	fx.connRepo.EXPECT().
		FindConnectionsByDevice(ctx, "device-123").
		Return(nil, nil)

	fx.qrSvc.EXPECT().
		GeneratePairingQR("778899").
		Return(nil, assert.AnError)

	result, err := fx.service.RegisterDevice(ctx, &usecase.DeviceRegistration{DeviceID: "device-123"})
	require.NoError(t, err)
	assert.Nil(t, result.PairingQR)
}

func TestPairingService_RequestConnection_ForwardsToDevice(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	device := &entity.Device{DeviceID: "device-123", DeviceCode: "402913"}
	requester := entity.RequesterInfo{AccountID: 42, Username: "maria", FullName: "Maria"}

	fx.deviceRepo.EXPECT().
		FindDeviceByCode(ctx, "402913").
		Return(device, nil)

	fx.connRepo.EXPECT().
		FindConnection(ctx, int64(42), "device-123").
		Return(nil, repository.ErrConnectionNotFound)

	channel := newCapturingChannel()
	fx.registry.Register("device-123", channel)

	result, err := fx.service.RequestConnection(ctx, &usecase.ConnectRequest{
		DeviceCode: "402913",
		Requester:  requester,
	})
	require.NoError(t, err)
	assert.False(t, result.AlreadyPaired)
	assert.NotEmpty(t, result.RequestID)
	assert.Equal(t, "device-123", result.DeviceID)

	require.Len(t, channel.events, 1)
	event, ok := channel.events[0].(*usecase.ConnectionRequestEvent)
	require.True(t, ok)
	assert.Equal(t, usecase.EventTypeConnectionRequest, event.Type)
	assert.Equal(t, result.RequestID, event.RequestID)
	assert.Equal(t, requester, event.Requester)

	// The request is parked until the device answers
	req := fx.pending.Take(result.RequestID)
	require.NotNil(t, req)
	assert.Equal(t, int64(42), req.AccountID)
}

func TestPairingService_RequestConnection_AlreadyPaired(t *testing.T) {
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

	result, err := fx.service.RequestConnection(ctx, &usecase.ConnectRequest{
		DeviceCode: "402913",
		Requester:  entity.RequesterInfo{AccountID: 42},
	})
	require.NoError(t, err)
	assert.True(t, result.AlreadyPaired)
	assert.Equal(t, conn, result.Connection)
	assert.Equal(t, 0, fx.pending.Len())
}

func TestPairingService_RespondConnection_Approved(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	req := &entity.PendingConnectionRequest{
		RequestID:  "req-1",
		AccountID:  42,
		DeviceID:   "device-123",
		DeviceCode: "402913",
		Requester:  entity.RequesterInfo{AccountID: 42, FullName: "Maria"},
	}
	fx.pending.Put(req)

	fx.connRepo.EXPECT().
		CreateConnection(ctx, mock.AnythingOfType("*entity.Connection")).
		Run(func(_ context.Context, conn *entity.Connection) {
			assert.Equal(t, int64(42), conn.AccountID)
			assert.Equal(t, "device-123", conn.DeviceID)
			assert.Empty(t, conn.Alias)
		}).
		Return(nil)

	fx.notifier.EXPECT().
		NotifyAccount(ctx, int64(42), mock.AnythingOfType("string")).
		Return(nil)

	channel := newCapturingChannel()
	fx.registry.Register("device-123", channel)

	fx.publisher.EXPECT().
		PublishPairingEvent(ctx, mock.MatchedBy(func(event *service.PairingEvent) bool {
			return event.Type == service.EventConnectionApproved && event.DeviceID == "device-123"
		})).
		Return(nil)

	outcome, err := fx.service.RespondConnection(ctx, &usecase.ConnectionDecision{
		RequestID: "req-1",
		Approved:  true,
	})
	require.NoError(t, err)
	require.NotNil(t, outcome.Connection)
	assert.Equal(t, "device-123", outcome.Connection.DeviceID)

	require.Len(t, channel.events, 1)
	echo, ok := channel.events[0].(*usecase.ConnectionApprovedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(42), echo.AccountID)
	assert.Equal(t, "Maria", echo.FullName)
}

func TestPairingService_RespondConnection_Rejected(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	fx.pending.Put(&entity.PendingConnectionRequest{
		RequestID:  "req-1",
		AccountID:  42,
		DeviceID:   "device-123",
		DeviceCode: "402913",
	})

	fx.notifier.EXPECT().
		NotifyAccount(ctx, int64(42), mock.AnythingOfType("string")).
		Return(nil)

	channel := newCapturingChannel()
	fx.registry.Register("device-123", channel)

	fx.publisher.EXPECT().
		PublishPairingEvent(ctx, mock.MatchedBy(func(event *service.PairingEvent) bool {
			return event.Type == service.EventConnectionRejected
		})).
		Return(nil)

	outcome, err := fx.service.RespondConnection(ctx, &usecase.ConnectionDecision{
		RequestID: "req-1",
		Approved:  false,
	})
	require.NoError(t, err)
	assert.Nil(t, outcome.Connection)
	assert.Equal(t, "req-1", outcome.Request.RequestID)

	require.Len(t, channel.events, 1)
	echo, ok := channel.events[0].(*usecase.ConnectionRejectedEvent)
	require.True(t, ok)
	assert.Equal(t, "req-1", echo.RequestID)
}

func TestPairingService_RespondConnection_ConcurrentApprovalIsIdempotent(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	fx.pending.Put(&entity.PendingConnectionRequest{
		RequestID: "req-1",
		AccountID: 42,
		DeviceID:  "device-123",
	})
	existing := &entity.Connection{ID: uuid.New(), AccountID: 42, DeviceID: "device-123"}

	fx.connRepo.EXPECT().
		CreateConnection(ctx, mock.AnythingOfType("*entity.Connection")).
		Return(repository.ErrDuplicateConnection)

	fx.connRepo.EXPECT().
		FindConnection(ctx, int64(42), "device-123").
		Return(existing, nil)

	fx.notifier.EXPECT().
		NotifyAccount(ctx, int64(42), mock.AnythingOfType("string")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishPairingEvent(ctx, mock.Anything).
		Return(nil)

	outcome, err := fx.service.RespondConnection(ctx, &usecase.ConnectionDecision{
		RequestID: "req-1",
		Approved:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, existing, outcome.Connection)
}

func TestPairingService_SetAlias_ByDeviceCode(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	device := &entity.Device{DeviceID: "device-123", DeviceCode: "402913"}
	conn := &entity.Connection{ID: uuid.New(), AccountID: 42, DeviceID: "device-123"}
	named := &entity.Connection{ID: conn.ID, AccountID: 42, DeviceID: "device-123", Alias: "grandma"}

	fx.deviceRepo.EXPECT().
		FindDeviceByCode(ctx, "402913").
		Return(device, nil)

	fx.connRepo.EXPECT().
		FindConnection(ctx, int64(42), "device-123").
		Return(conn, nil)

	fx.connRepo.EXPECT().
		UpdateAlias(ctx, int64(42), "device-123", "grandma").
		Return(named, nil)

	updated, err := fx.service.SetAlias(ctx, 42, "402913", "grandma")
	require.NoError(t, err)
	assert.Equal(t, "grandma", updated.Alias)
}

func TestPairingService_SetAlias_RenameByExistingAlias(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	conn := &entity.Connection{ID: uuid.New(), AccountID: 42, DeviceID: "device-123", Alias: "grandma"}
	renamed := &entity.Connection{ID: conn.ID, AccountID: 42, DeviceID: "device-123", Alias: "abuela"}

	fx.deviceRepo.EXPECT().
		FindDeviceByCode(ctx, "grandma").
		Return(nil, repository.ErrDeviceNotFound)

	fx.connRepo.EXPECT().
		ResolveAlias(ctx, int64(42), "grandma").
		Return(conn, nil)

	fx.connRepo.EXPECT().
		UpdateAlias(ctx, int64(42), "device-123", "abuela").
		Return(renamed, nil)

	updated, err := fx.service.SetAlias(ctx, 42, "grandma", "abuela")
	require.NoError(t, err)
	assert.Equal(t, "abuela", updated.Alias)
}

func TestPairingService_Disconnect(t *testing.T) {
	fx := createTestPairingService(t)

	ctx := context.Background()
	conn := &entity.Connection{ID: uuid.New(), AccountID: 42, DeviceID: "device-123", Alias: "grandma"}

	fx.connRepo.EXPECT().
		ResolveAlias(ctx, int64(42), "grandma").
		Return(conn, nil)

	fx.connRepo.EXPECT().
		DeleteConnectionByAlias(ctx, int64(42), "grandma").
		Return(nil)

	channel := newCapturingChannel()
	fx.registry.Register("device-123", channel)

	fx.publisher.EXPECT().
		PublishPairingEvent(ctx, mock.MatchedBy(func(event *service.PairingEvent) bool {
			return event.Type == service.EventConnectionRemoved && event.Alias == "grandma"
		})).
		Return(nil)

	removed, err := fx.service.Disconnect(ctx, 42, "grandma")
	require.NoError(t, err)
	assert.Equal(t, conn, removed)

	require.Len(t, channel.events, 1)
	event, ok := channel.events[0].(*usecase.ConnectionRemovedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(42), event.AccountID)
}

func TestPairingService_SweepExpired_NotifiesRequesters(t *testing.T) {
	fx := createTestPairingServiceWithTTL(t, time.Minute)

	ctx := context.Background()
	first := &entity.PendingConnectionRequest{RequestID: "req-1", AccountID: 42, DeviceID: "device-123"}
	second := &entity.PendingConnectionRequest{RequestID: "req-2", AccountID: 43, DeviceID: "device-123"}
	fx.pending.Put(first)
	fx.pending.Put(second)

	// Age both entries past the table's window
	first.CreatedAt = time.Now().Add(-2 * time.Minute)
	second.CreatedAt = time.Now().Add(-2 * time.Minute)

	fx.notifier.EXPECT().
		NotifyAccount(ctx, mock.AnythingOfType("int64"), mock.AnythingOfType("string")).
		Return(nil).
		Times(2)

	swept := fx.service.SweepExpired(ctx)
	assert.Equal(t, 2, swept)
	assert.Equal(t, 0, fx.pending.Len())
}

// capturingChannel records pushed events for assertions.
type capturingChannel struct {
	events []any
	err    error
}

func newCapturingChannel() *capturingChannel {
	return &capturingChannel{}
}

func (c *capturingChannel) Push(_ context.Context, event any) error {
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, event)

	return nil
}
