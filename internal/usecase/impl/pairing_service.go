// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
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

// codeRetryLimit bounds how many times registration retries on a device code
// collision raced in by a concurrent registration.
const codeRetryLimit = 3

// pairingService implements the PairingUsecase interface.
type pairingService struct {
	deviceRepo repository.DeviceRepository
	connRepo   repository.ConnectionRepository
	registry   service.ConnectionRegistry
	pending    service.PendingRequestStore
	codeSvc    service.CodeService
	qrSvc      service.QRCodeService
	notifier   service.AccountNotifier
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// NewPairingService is the constructor for pairingService.
func NewPairingService(
	deviceRepo repository.DeviceRepository,
	connRepo repository.ConnectionRepository,
	registry service.ConnectionRegistry,
	pending service.PendingRequestStore,
	codeSvc service.CodeService,
	qrSvc service.QRCodeService,
	notifier service.AccountNotifier,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PairingUsecase {
	return &pairingService{
		deviceRepo: deviceRepo,
		connRepo:   connRepo,
		registry:   registry,
		pending:    pending,
		codeSvc:    codeSvc,
		qrSvc:      qrSvc,
		notifier:   notifier,
		publisher:  publisher,
		logger:     logger,
	}
}

// RegisterDevice records a device announcing itself over a fresh connection.
// First contact assigns a stable device id and a pairing code; reconnects
// keep both and refresh the push token and last-connected timestamp.
func (srv *pairingService) RegisterDevice(ctx context.Context, registration *usecase.DeviceRegistration) (*usecase.RegisteredDevice, error) {
	deviceID := registration.DeviceID
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	switch {
	case err == nil:
		device.FCMToken = registration.FCMToken
		device.LastConnectedAt = time.Now()
		if err := srv.deviceRepo.UpsertDevice(ctx, device); err != nil {
			return nil, errors.Wrap(err, "failed to refresh device")
		}

	case errors.Is(err, repository.ErrDeviceNotFound):
		device, err = srv.createDevice(ctx, deviceID, registration.FCMToken)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Wrap(err, "failed to find device")
	}

	connections, err := srv.connRepo.FindConnectionsByDevice(ctx, device.DeviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device connections")
	}

	result := &usecase.RegisteredDevice{
		Device:      device,
		Connections: connections,
	}

	// QR rendering is cosmetic; the code alone is enough to pair
	if qr, err := srv.qrSvc.GeneratePairingQR(device.DeviceCode); err != nil {
		srv.logger.Warn("Failed to render pairing QR", "deviceID", device.DeviceID, "error", err)
	} else {
		result.PairingQR = qr
	}

	srv.logger.Info("Device registered",
		"deviceID", device.DeviceID,
		"deviceCode", device.DeviceCode,
		"connections", len(connections),
	)

	return result, nil
}

// createDevice issues a pairing code and persists a brand-new device,
// retrying on the rare code collision with a concurrent registration.
func (srv *pairingService) createDevice(ctx context.Context, deviceID, fcmToken string) (*entity.Device, error) {
	for attempt := 0; attempt < codeRetryLimit; attempt++ {
		codes, err := srv.deviceRepo.ListDeviceCodes(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list device codes")
		}

		existing := make(map[string]struct{}, len(codes))
		for _, code := range codes {
			existing[code] = struct{}{}
		}

		device := &entity.Device{
			DeviceID:        deviceID,
			DeviceCode:      srv.codeSvc.GenerateCode(existing),
			FCMToken:        fcmToken,
			LastConnectedAt: time.Now(),
		}

		err = srv.deviceRepo.UpsertDevice(ctx, device)
		if err == nil {
			return device, nil
		}
		if !errors.Is(err, repository.ErrDeviceCodeTaken) {
			return nil, errors.Wrap(err, "failed to create device")
		}

		srv.logger.Warn("Device code collision, retrying", "deviceID", deviceID)
	}

	return nil, errors.Wrap(domainerrors.ErrInternalError, "exhausted device code retries")
}

// RequestConnection resolves a device code and forwards the pairing request
// to the device's live connection. Nothing is persisted until the device
// approves.
func (srv *pairingService) RequestConnection(ctx context.Context, req *usecase.ConnectRequest) (*usecase.ConnectResult, error) {
	srv.SweepExpired(ctx)

	device, err := srv.deviceRepo.FindDeviceByCode(ctx, req.DeviceCode)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceCodeNotFound, req.DeviceCode)
		}

		return nil, errors.Wrap(err, "failed to find device by code")
	}

	// Pairing twice is a no-op, answered without bothering the device
	conn, err := srv.connRepo.FindConnection(ctx, req.Requester.AccountID, device.DeviceID)
	if err == nil {
		return &usecase.ConnectResult{AlreadyPaired: true, Connection: conn, DeviceID: device.DeviceID}, nil
	}
	if !errors.Is(err, repository.ErrConnectionNotFound) {
		return nil, errors.Wrap(err, "failed to check existing connection")
	}

	channel, ok := srv.registry.Get(device.DeviceID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrDeviceUnreachable, device.DeviceID)
	}

	pendingReq := &entity.PendingConnectionRequest{
		RequestID:  newRequestID(),
		AccountID:  req.Requester.AccountID,
		DeviceID:   device.DeviceID,
		DeviceCode: req.DeviceCode,
		Requester:  req.Requester,
	}
	srv.pending.Put(pendingReq)

	event := &usecase.ConnectionRequestEvent{
		Type:       usecase.EventTypeConnectionRequest,
		RequestID:  pendingReq.RequestID,
		DeviceCode: req.DeviceCode,
		Requester:  req.Requester,
	}
	if err := channel.Push(ctx, event); err != nil {
		// Undo the reservation so a retry does not pile up ghost requests
		srv.pending.Take(pendingReq.RequestID)

		srv.logger.Warn("Failed to push pairing request",
			"deviceID", device.DeviceID,
			"requestID", pendingReq.RequestID,
			"error", err,
		)

		return nil, errors.Wrap(domainerrors.ErrTransportFailure, "connection request push failed")
	}

	srv.logger.Info("Pairing request forwarded",
		"deviceID", device.DeviceID,
		"requestID", pendingReq.RequestID,
		"accountID", req.Requester.AccountID,
	)

	return &usecase.ConnectResult{RequestID: pendingReq.RequestID, DeviceID: device.DeviceID}, nil
}

// RespondConnection consumes a pending request with the device's decision.
// The consuming Take guarantees each request settles exactly once.
func (srv *pairingService) RespondConnection(ctx context.Context, decision *usecase.ConnectionDecision) (*usecase.ConnectionOutcome, error) {
	srv.SweepExpired(ctx)

	req := srv.pending.Take(decision.RequestID)
	if req == nil {
		return nil, errors.Wrap(domainerrors.ErrRequestNotFound, decision.RequestID)
	}

	if !decision.Approved {
		srv.notifyAccount(ctx, req.AccountID,
			fmt.Sprintf("Your request to connect to device %s was declined.", req.DeviceCode))

		// Confirm the decline back to the device, best-effort
		if channel, ok := srv.registry.Get(req.DeviceID); ok {
			event := &usecase.ConnectionRejectedEvent{
				Type:      usecase.EventTypeConnectionRejected,
				RequestID: req.RequestID,
			}
			if err := channel.Push(ctx, event); err != nil {
				srv.logger.Warn("Failed to echo rejection to device", "deviceID", req.DeviceID, "error", err)
			}
		}

		srv.publishEvent(ctx, &service.PairingEvent{
			RequestID: req.RequestID,
			Type:      service.EventConnectionRejected,
			DeviceID:  req.DeviceID,
			AccountID: req.AccountID,
		})

		srv.logger.Info("Pairing request rejected", "requestID", req.RequestID, "deviceID", req.DeviceID)

		return &usecase.ConnectionOutcome{Request: req}, nil
	}

	conn := &entity.Connection{
		ID:        uuid.New(),
		AccountID: req.AccountID,
		DeviceID:  req.DeviceID,
		CreatedAt: time.Now(),
	}

	err := srv.connRepo.CreateConnection(ctx, conn)
	if errors.Is(err, repository.ErrDuplicateConnection) {
		// A concurrent approval already recorded the pairing; adopt it
		conn, err = srv.connRepo.FindConnection(ctx, req.AccountID, req.DeviceID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist connection")
	}

	srv.notifyAccount(ctx, req.AccountID,
		fmt.Sprintf("Connected to device %s. Give it a name with /alias %s <name>.", req.DeviceCode, req.DeviceCode))

	// Echo the settled pairing back to the device, best-effort
	if channel, ok := srv.registry.Get(req.DeviceID); ok {
		event := &usecase.ConnectionApprovedEvent{
			Type:      usecase.EventTypeConnectionApproved,
			AccountID: req.AccountID,
			FullName:  req.Requester.FullName,
		}
		if err := channel.Push(ctx, event); err != nil {
			srv.logger.Warn("Failed to echo approval to device", "deviceID", req.DeviceID, "error", err)
		}
	}

	srv.publishEvent(ctx, &service.PairingEvent{
		RequestID: req.RequestID,
		Type:      service.EventConnectionApproved,
		DeviceID:  req.DeviceID,
		AccountID: req.AccountID,
	})

	srv.logger.Info("Pairing approved",
		"requestID", req.RequestID,
		"deviceID", req.DeviceID,
		"accountID", req.AccountID,
	)

	return &usecase.ConnectionOutcome{Request: req, Connection: conn}, nil
}

// SetAlias labels a pairing so the account can address the device by name.
// Target resolves as a device code first, then as an existing alias.
func (srv *pairingService) SetAlias(ctx context.Context, accountID int64, target, alias string) (*entity.Connection, error) {
	conn, err := srv.resolveTarget(ctx, accountID, target)
	if err != nil {
		return nil, err
	}

	updated, err := srv.connRepo.UpdateAlias(ctx, accountID, conn.DeviceID, alias)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAliasInUse):
			return nil, errors.Wrap(domainerrors.ErrAliasConflict, alias)
		case errors.Is(err, repository.ErrConnectionNotFound):
			return nil, errors.Wrap(domainerrors.ErrNotPaired, target)
		default:
			return nil, errors.Wrap(err, "failed to update alias")
		}
	}

	srv.logger.Info("Alias set", "accountID", accountID, "deviceID", conn.DeviceID, "alias", alias)

	return updated, nil
}

// resolveTarget finds the account's pairing addressed by a device code or an
// already-assigned alias.
func (srv *pairingService) resolveTarget(ctx context.Context, accountID int64, target string) (*entity.Connection, error) {
	device, err := srv.deviceRepo.FindDeviceByCode(ctx, target)
	if err == nil {
		conn, err := srv.connRepo.FindConnection(ctx, accountID, device.DeviceID)
		if err == nil {
			return conn, nil
		}
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotPaired, target)
		}

		return nil, errors.Wrap(err, "failed to find connection")
	}
	if !errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, errors.Wrap(err, "failed to find device by code")
	}

	conn, err := srv.connRepo.ResolveAlias(ctx, accountID, target)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotPaired, target)
		}

		return nil, errors.Wrap(err, "failed to resolve alias")
	}

	return conn, nil
}

// Disconnect removes the pairing an account addresses by alias.
func (srv *pairingService) Disconnect(ctx context.Context, accountID int64, alias string) (*entity.Connection, error) {
	conn, err := srv.connRepo.ResolveAlias(ctx, accountID, alias)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnknownAlias, alias)
		}

		return nil, errors.Wrap(err, "failed to resolve alias")
	}

	if err := srv.connRepo.DeleteConnectionByAlias(ctx, accountID, alias); err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnknownAlias, alias)
		}

		return nil, errors.Wrap(err, "failed to delete connection")
	}

	// Tell the device it lost a family member, best-effort
	if channel, ok := srv.registry.Get(conn.DeviceID); ok {
		event := &usecase.ConnectionRemovedEvent{
			Type:      usecase.EventTypeConnectionRemoved,
			AccountID: accountID,
		}
		if err := channel.Push(ctx, event); err != nil {
			srv.logger.Warn("Failed to push disconnect to device", "deviceID", conn.DeviceID, "error", err)
		}
	}

	srv.publishEvent(ctx, &service.PairingEvent{
		Type:      service.EventConnectionRemoved,
		DeviceID:  conn.DeviceID,
		AccountID: accountID,
		Alias:     alias,
	})

	srv.logger.Info("Pairing removed", "accountID", accountID, "deviceID", conn.DeviceID, "alias", alias)

	return conn, nil
}

// SweepExpired discards expired pending requests and tells each requester
// their attempt timed out.
func (srv *pairingService) SweepExpired(ctx context.Context) int {
	expired := srv.pending.Sweep()
	for _, req := range expired {
		srv.notifyAccount(ctx, req.AccountID,
			fmt.Sprintf("Your request to connect to device %s expired without an answer.", req.DeviceCode))

		srv.logger.Info("Pairing request expired", "requestID", req.RequestID, "deviceID", req.DeviceID)
	}

	return len(expired)
}

// notifyAccount delivers a chat notification without letting transport
// hiccups fail the surrounding operation.
func (srv *pairingService) notifyAccount(ctx context.Context, accountID int64, text string) {
	if err := srv.notifier.NotifyAccount(ctx, accountID, text); err != nil {
		srv.logger.Warn("Failed to notify account", "accountID", accountID, "error", err)
	}
}

// publishEvent emits a pairing event to the stream, best-effort.
func (srv *pairingService) publishEvent(ctx context.Context, event *service.PairingEvent) {
	if err := srv.publisher.PublishPairingEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish pairing event", "type", event.Type, "error", err)
	}
}

// newRequestID mints an unguessable pending request token.
func newRequestID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in no state to serve
		panic(errors.Wrap(err, "failed to read random bytes"))
	}

	return base64.RawURLEncoding.EncodeToString(buf)
}
