package ws

import (
	"context"
	"log/slog"
	"net/http"

	domainerrors "github.com/ogarmar/Compa/internal/domain/errors"
	"github.com/ogarmar/Compa/internal/domain/service"
	"github.com/ogarmar/Compa/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HandlerParams holds dependencies for the WebSocket Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	PairingUC usecase.PairingUsecase
	RelayUC   usecase.RelayUsecase
	Registry  service.ConnectionRegistry
	Logger    *slog.Logger
}

// Handler owns the device-facing WebSocket endpoint. Each connection runs a
// synchronous read loop; outbound pushes arrive through the registry from
// other goroutines.
type Handler struct {
	pairingUC usecase.PairingUsecase
	relayUC   usecase.RelayUsecase
	registry  service.ConnectionRegistry
	logger    *slog.Logger
	upgrader  websocket.Upgrader
}

// NewHandler is the constructor for Handler.
func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		pairingUC: params.PairingUC,
		relayUC:   params.RelayUC,
		registry:  params.Registry,
		logger:    params.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Devices connect from app webviews and kiosks, not browsers
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and serves the device until the
// socket drops.
func (h *Handler) HandleConnection(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to upgrade connection")
	}

	ctx := c.Request().Context()
	cl := newClient(conn)

	var deviceID string
	defer func() {
		if deviceID != "" {
			// Only drops the entry if a reconnect has not replaced it
			h.registry.Unregister(deviceID, cl)
		}
		cl.close()
		h.logger.Info("Device connection closed", "deviceID", deviceID)
	}()

	for {
		var event inboundEvent
		if err := conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Device connection dropped", "deviceID", deviceID, "error", err)
			}

			return nil
		}

		switch event.Type {
		case eventRegister:
			registered, err := h.pairingUC.RegisterDevice(ctx, &usecase.DeviceRegistration{
				DeviceID: event.DeviceID,
				FCMToken: event.FCMToken,
			})
			if err != nil {
				h.pushError(ctx, cl, err)

				continue
			}

			// Rebind under the settled id; last writer wins on reconnect
			if deviceID != "" && deviceID != registered.Device.DeviceID {
				h.registry.Unregister(deviceID, cl)
			}
			deviceID = registered.Device.DeviceID
			h.registry.Register(deviceID, cl)

			info := &deviceInfoEvent{
				Type:        "device_info",
				DeviceID:    registered.Device.DeviceID,
				DeviceCode:  registered.Device.DeviceCode,
				PairingQR:   registered.PairingQR,
				Connections: toConnectionInfos(registered.Connections),
			}
			if err := cl.Push(ctx, info); err != nil {
				h.logger.Warn("Failed to push device info", "deviceID", deviceID, "error", err)

				return nil
			}

		case eventConnectionResponse:
			if _, err := h.pairingUC.RespondConnection(ctx, &usecase.ConnectionDecision{
				RequestID: event.RequestID,
				Approved:  event.Approved,
			}); err != nil {
				h.pushError(ctx, cl, err)
			}

		case eventAckMessage:
			messageID, err := uuid.Parse(event.MessageID)
			if err != nil {
				h.pushError(ctx, cl, domainerrors.ErrValidationFailed.WithDetails("invalid message id"))

				continue
			}
			if err := h.relayUC.MarkRead(ctx, messageID); err != nil {
				h.pushError(ctx, cl, err)
			}

		default:
			h.logger.Warn("Unknown event from device", "deviceID", deviceID, "type", event.Type)
		}
	}
}

// pushError reports a failed operation back over the socket, best-effort.
func (h *Handler) pushError(ctx context.Context, cl *client, opErr error) {
	code, message := "INTERNAL_ERROR", "Internal server error"

	var appErr domainerrors.AppError
	if errors.As(opErr, &appErr) {
		code, message = appErr.ErrorCode(), appErr.Message()
	} else {
		h.logger.Error("Unhandled error on device socket", "error", opErr)
	}

	_ = cl.Push(ctx, &errorEvent{
		Type:    "error",
		Code:    code,
		Message: message,
	})
}
