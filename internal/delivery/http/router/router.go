// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fleettrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TrackerHandler *handler.TrackerHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	trackerHandler *handler.TrackerHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		trackerHandler: params.TrackerHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Location ingest from tracker apps
	locationGroup := e.Group("/location")
	{
		locationGroup.POST("/update", r.trackerHandler.UpdateLocation)
	}

	// Fleet and per-device control
	deviceGroup := e.Group("/devices")
	{
		deviceGroup.GET("", r.trackerHandler.ListDevices)
		deviceGroup.POST("/wakeup-all", r.trackerHandler.WakeAll)
		deviceGroup.GET("/:id", r.trackerHandler.GetDevice)
		deviceGroup.POST("/:id/sleep", r.trackerHandler.Sleep)
		deviceGroup.POST("/:id/watch", r.trackerHandler.Watch)
		deviceGroup.POST("/:id/unwatch", r.trackerHandler.Unwatch)
		deviceGroup.POST("/:id/ring", r.trackerHandler.Ring)
		deviceGroup.POST("/:id/reset-alarm", r.trackerHandler.ResetAlarm)
	}
}
