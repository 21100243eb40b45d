package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lobby = entity.Anchor{ID: "lobby-1", Label: "Lobby entrance", Position: entity.Point{X: 2, Z: 3}}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "m"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateAnchorQR(t *testing.T) {
	service := NewQRCodeService(128, "M")

	qrBytes, err := service.GenerateAnchorQR(lobby)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCodeService_GenerateAnchorQR_EmptyID(t *testing.T) {
	service := NewQRCodeService(128, "M")

	_, err := service.GenerateAnchorQR(entity.Anchor{})
	assert.Error(t, err)
}

func TestNewQRCodeServiceFromConfig_Defaults(t *testing.T) {
	service := NewQRCodeServiceFromConfig(&config.Config{})

	qrBytes, err := service.GenerateAnchorQR(lobby)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, defaultSize, img.Bounds().Dx())
}

func TestQRCodeService_ParseAnchorQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	valid, err := json.Marshal(AnchorPayload{AnchorID: "lobby-1", Type: "anchor"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr string
	}{
		{name: "valid", data: string(valid), want: "lobby-1"},
		{name: "not json", data: "lobby-1", wantErr: "failed to unmarshal"},
		{name: "wrong type", data: `{"anchor_id":"lobby-1","type":"subscription"}`, wantErr: "invalid QR code type"},
		{name: "missing id", data: `{"type":"anchor"}`, wantErr: "anchor id is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseAnchorQR(tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
