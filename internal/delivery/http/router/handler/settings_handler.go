package handler

import (
	"net/http"

	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/infra/effects"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	Mute *effects.MuteSettings
}

// SettingsHandler toggles user feedback preferences
type SettingsHandler struct {
	mute *effects.MuteSettings
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{mute: params.Mute}
}

// MuteResponse reports the current mute flags
type MuteResponse struct {
	SoundMuted     bool `json:"sound_muted"`
	VibrationMuted bool `json:"vibration_muted"`
}

// UpdateMuteRequest changes the flags that are present
type UpdateMuteRequest struct {
	SoundMuted     *bool `json:"sound_muted,omitempty"`
	VibrationMuted *bool `json:"vibration_muted,omitempty"`
}

// GetMute returns the current mute flags
func (h *SettingsHandler) GetMute(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.snapshot(), "")
}

// UpdateMute updates the flags named in the request
func (h *SettingsHandler) UpdateMute(c echo.Context) error {
	var req UpdateMuteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mute settings")
	}

	if req.SoundMuted != nil {
		h.mute.SetSoundMuted(*req.SoundMuted)
	}
	if req.VibrationMuted != nil {
		h.mute.SetVibrationMuted(*req.VibrationMuted)
	}

	return response.Success(c, http.StatusOK, h.snapshot(), "Settings updated")
}

func (h *SettingsHandler) snapshot() MuteResponse {
	return MuteResponse{
		SoundMuted:     h.mute.SoundMuted(),
		VibrationMuted: h.mute.VibrationMuted(),
	}
}
