package handler

import (
	"net/http"

	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RoutingUC usecase.RoutingUsecase
}

// RouteHandler previews routes without touching the navigation session
type RouteHandler struct {
	routingUC usecase.RoutingUsecase
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{routingUC: params.RoutingUC}
}

// RoutesRequest asks for the routes from one point to several targets
type RoutesRequest struct {
	From    *entity.Point  `json:"from" validate:"required"`
	Targets []entity.Point `json:"targets" validate:"required,min=1,max=64"`
}

// CalculateRoutes handles a one-to-many route preview
func (h *RouteHandler) CalculateRoutes(c echo.Context) error {
	var req RoutesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.routingUC.OneToMany(c.Request().Context(), *req.From, req.Targets)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, "")
}
