package handler

import (
	"net/http"

	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DestinationHandlerParams holds dependencies for DestinationHandler, injected by Fx.
type DestinationHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// DestinationHandler exposes the destination catalog
type DestinationHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewDestinationHandler is the constructor for DestinationHandler
func NewDestinationHandler(params DestinationHandlerParams) *DestinationHandler {
	return &DestinationHandler{catalogUC: params.CatalogUC}
}

// ListDestinations returns every destination with its instances
func (h *DestinationHandler) ListDestinations(c echo.Context) error {
	destinations, err := h.catalogUC.ListDestinations(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, destinations, "")
}

// GetDestination returns the instances of one destination
func (h *DestinationHandler) GetDestination(c echo.Context) error {
	destination, err := h.catalogUC.FindDestination(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, destination, "")
}
