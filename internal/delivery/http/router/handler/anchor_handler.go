package handler

import (
	"log/slog"
	"net/http"

	"wayfinder/internal/delivery/http/middleware"
	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnchorHandlerParams holds dependencies for AnchorHandler, injected by Fx.
type AnchorHandlerParams struct {
	fx.In

	RelocalizationUC usecase.RelocalizationUsecase
	Logger           *slog.Logger
}

// AnchorHandler serves QR anchor markers and relocalization
type AnchorHandler struct {
	relocalizationUC usecase.RelocalizationUsecase
	logger           *slog.Logger
}

// NewAnchorHandler is the constructor for AnchorHandler
func NewAnchorHandler(params AnchorHandlerParams) *AnchorHandler {
	return &AnchorHandler{
		relocalizationUC: params.RelocalizationUC,
		logger:           params.Logger,
	}
}

// RelocalizeRequest carries the text decoded from a scanned marker
type RelocalizeRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// ListAnchors returns every anchor of the building
func (h *AnchorHandler) ListAnchors(c echo.Context) error {
	anchors, err := h.relocalizationUC.ListAnchors(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, anchors, "")
}

// GetAnchorMarker returns the printable QR marker of an anchor
func (h *AnchorHandler) GetAnchorMarker(c echo.Context) error {
	png, err := h.relocalizationUC.AnchorMarker(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Relocalize moves the user to the anchor named by a scanned marker
func (h *AnchorHandler) Relocalize(c echo.Context) error {
	var req RelocalizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid relocalization input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	anchor, err := h.relocalizationUC.Relocalize(c.Request().Context(), req.Payload)
	if err != nil {
		middleware.LoggerFrom(c.Request().Context(), h.logger).Warn("Relocalization failed", slog.Any("error", err))

		return err
	}

	return response.Success(c, http.StatusOK, anchor, "Position updated")
}
