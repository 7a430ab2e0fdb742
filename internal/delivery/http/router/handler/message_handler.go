package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "github.com/ogarmar/Compa/internal/delivery/context"
	"github.com/ogarmar/Compa/internal/delivery/http/response"
	"github.com/ogarmar/Compa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	RelayUC usecase.RelayUsecase
	Logger  *slog.Logger
}

// MessageHandler holds dependencies for message-related handlers
type MessageHandler struct {
	relayUC usecase.RelayUsecase
	logger  *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		relayUC: params.RelayUC,
		logger:  params.Logger,
	}
}

// ListUnreadRequest represents the path parameters for listing unread messages
type ListUnreadRequest struct {
	DeviceID string `param:"device_id" validate:"required,max=100"`
}

// MarkReadRequest represents the path parameters for acknowledging a message
type MarkReadRequest struct {
	MessageID string `param:"id" validate:"required,uuid"`
}

// ListUnread returns the target device's queued messages, oldest first.
// Devices that cannot hold a socket open poll this endpoint instead.
func (h *MessageHandler) ListUnread(c echo.Context) error {
	var req ListUnreadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	messages, err := h.relayUC.FetchUnread(c.Request().Context(), req.DeviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages, "Unread messages retrieved successfully")
}

// MarkRead acknowledges a single message by id.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	var req MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	messageID, err := uuid.Parse(req.MessageID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	ctx := c.Request().Context()
	if err := h.relayUC.MarkRead(ctx, messageID); err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Message acknowledged",
		"messageID", messageID,
	)

	return response.Success(c, http.StatusOK, map[string]string{"message_id": messageID.String()}, "Message marked as read")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
