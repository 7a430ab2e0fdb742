package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ogarmar/Compa/internal/delivery/http/validator"
	"github.com/ogarmar/Compa/internal/domain/entity"
	mockUC "github.com/ogarmar/Compa/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestMessageHandler_ListUnread(t *testing.T) {
	relayUC := mockUC.NewMockRelayUsecase(t)
	h := NewMessageHandler(MessageHandlerParams{RelayUC: relayUC, Logger: newDiscardLogger()})

	messages := []*entity.FamilyMessage{
		{ID: uuid.New(), DeviceID: "device-123", SenderName: "Maria", Body: "Good morning!"},
	}
	relayUC.EXPECT().
		FetchUnread(mock.Anything, "device-123").
		Return(messages, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/devices/device-123/messages/unread")
	c.SetParamNames("device_id")
	c.SetParamValues("device-123")

	require.NoError(t, h.ListUnread(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Good morning!")
}

func TestMessageHandler_ListUnread_MissingDeviceID(t *testing.T) {
	relayUC := mockUC.NewMockRelayUsecase(t)
	h := NewMessageHandler(MessageHandlerParams{RelayUC: relayUC, Logger: newDiscardLogger()})

	c, rec := newTestContext(t, http.MethodGet, "/api/devices//messages/unread")
	c.SetParamNames("device_id")
	c.SetParamValues("")

	// Validation short-circuits before the usecase is reached
	require.NoError(t, h.ListUnread(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestMessageHandler_MarkRead(t *testing.T) {
	relayUC := mockUC.NewMockRelayUsecase(t)
	h := NewMessageHandler(MessageHandlerParams{RelayUC: relayUC, Logger: newDiscardLogger()})

	messageID := uuid.New()
	relayUC.EXPECT().
		MarkRead(mock.Anything, messageID).
		Return(nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/messages/"+messageID.String()+"/read")
	c.SetParamNames("id")
	c.SetParamValues(messageID.String())

	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), messageID.String())
}

func TestMessageHandler_MarkRead_InvalidID(t *testing.T) {
	relayUC := mockUC.NewMockRelayUsecase(t)
	h := NewMessageHandler(MessageHandlerParams{RelayUC: relayUC, Logger: newDiscardLogger()})

	c, rec := newTestContext(t, http.MethodPost, "/api/messages/not-a-uuid/read")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
