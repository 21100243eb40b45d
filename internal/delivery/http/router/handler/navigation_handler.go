package handler

import (
	"log/slog"
	"net/http"

	"wayfinder/internal/delivery/http/middleware"
	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
	CatalogUC    usecase.CatalogUsecase
	PositionSink service.PositionSink
	Logger       *slog.Logger
}

// NavigationHandler exposes the navigation session
type NavigationHandler struct {
	navigationUC usecase.NavigationUsecase
	catalogUC    usecase.CatalogUsecase
	positionSink service.PositionSink
	logger       *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{
		navigationUC: params.NavigationUC,
		catalogUC:    params.CatalogUC,
		positionSink: params.PositionSink,
		logger:       params.Logger,
	}
}

// SelectDestinationRequest names the destination to navigate to
type SelectDestinationRequest struct {
	Name string `json:"name" validate:"required"`
}

// PositionRequest is a position sample in building coordinates. Every axis
// is required so a missing field never reads as zero.
type PositionRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
	Z *float64 `json:"z" validate:"required"`
}

// GetStatus returns the session snapshot
func (h *NavigationHandler) GetStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.navigationUC.Status(), "")
}

// SelectDestination resolves a destination name and starts navigating to it
func (h *NavigationHandler) SelectDestination(c echo.Context) error {
	var req SelectDestinationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid destination input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	destination, err := h.catalogUC.Navigate(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	middleware.LoggerFrom(c.Request().Context(), h.logger).Info("Navigation started",
		slog.String("destination", destination.Name),
		slog.Int("instances", len(destination.Instances)),
	)

	return response.Success(c, http.StatusOK, h.navigationUC.Status(), "Navigation started")
}

// ClearDestination stops navigation
func (h *NavigationHandler) ClearDestination(c echo.Context) error {
	h.navigationUC.Clear()

	return response.Success(c, http.StatusOK, h.navigationUC.Status(), "Navigation cleared")
}

// UpdatePosition feeds a client-reported position into the position source
func (h *NavigationHandler) UpdatePosition(c echo.Context) error {
	var req PositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	position := entity.Point{X: *req.X, Y: *req.Y, Z: *req.Z}
	if err := h.positionSink.UpdatePosition(c.Request().Context(), position); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
