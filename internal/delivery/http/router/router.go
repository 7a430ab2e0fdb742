// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/ogarmar/Compa/internal/delivery/http/middleware"
	"github.com/ogarmar/Compa/internal/delivery/http/router/handler"
	"github.com/ogarmar/Compa/internal/delivery/ws"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MessageHandler      *handler.MessageHandler
	WSHandler           *ws.Handler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	messageHandler      *handler.MessageHandler
	wsHandler           *ws.Handler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		messageHandler:      params.MessageHandler,
		wsHandler:           params.WSHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Device socket; everything pairing-related flows over it
	e.GET("/ws", r.wsHandler.HandleConnection)

	// REST surface for devices that poll instead of holding a socket
	apiGroup := e.Group("/api")
	apiGroup.Use(r.requestIDMiddleware.Process)
	{
		apiGroup.GET("/devices/:device_id/messages/unread", r.messageHandler.ListUnread)
		apiGroup.POST("/messages/:id/read", r.messageHandler.MarkRead)
	}
}
