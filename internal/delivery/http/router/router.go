// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wayfinder/internal/delivery/http/router/handler"
	"wayfinder/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NavigationHandler  *handler.NavigationHandler
	DestinationHandler *handler.DestinationHandler
	AnchorHandler      *handler.AnchorHandler
	SettingsHandler    *handler.SettingsHandler
	StreamHandler      *handler.StreamHandler
	RouteHandler       *handler.RouteHandler
	Metrics            *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	navigationHandler  *handler.NavigationHandler
	destinationHandler *handler.DestinationHandler
	anchorHandler      *handler.AnchorHandler
	settingsHandler    *handler.SettingsHandler
	streamHandler      *handler.StreamHandler
	routeHandler       *handler.RouteHandler
	metrics            *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		navigationHandler:  params.NavigationHandler,
		destinationHandler: params.DestinationHandler,
		anchorHandler:      params.AnchorHandler,
		settingsHandler:    params.SettingsHandler,
		streamHandler:      params.StreamHandler,
		routeHandler:       params.RouteHandler,
		metrics:            params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	navigationGroup := e.Group("/navigation")
	{
		navigationGroup.GET("", r.navigationHandler.GetStatus)
		navigationGroup.POST("/destination", r.navigationHandler.SelectDestination)
		navigationGroup.DELETE("/destination", r.navigationHandler.ClearDestination)
		navigationGroup.POST("/position", r.navigationHandler.UpdatePosition)
		navigationGroup.GET("/stream", r.streamHandler.Stream)
	}

	destinationGroup := e.Group("/destinations")
	{
		destinationGroup.GET("", r.destinationHandler.ListDestinations)
		destinationGroup.GET("/:name", r.destinationHandler.GetDestination)
	}

	anchorGroup := e.Group("/anchors")
	{
		anchorGroup.GET("", r.anchorHandler.ListAnchors)
		anchorGroup.GET("/:id/qr", r.anchorHandler.GetAnchorMarker)
	}
	e.POST("/relocalize", r.anchorHandler.Relocalize)

	e.POST("/routes", r.routeHandler.CalculateRoutes)

	settingsGroup := e.Group("/settings")
	{
		settingsGroup.GET("/mute", r.settingsHandler.GetMute)
		settingsGroup.PUT("/mute", r.settingsHandler.UpdateMute)
	}
}
