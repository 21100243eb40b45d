package qrcode

import (
	"encoding/json"
	"strings"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	anchorPayloadType = "anchor"
	defaultSize       = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// AnchorPayload is the JSON encoded in an anchor marker
type AnchorPayload struct {
	AnchorID string `json:"anchor_id"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateAnchorQR renders the anchor marker as PNG
func (s *qrcodeService) GenerateAnchorQR(anchor entity.Anchor) ([]byte, error) {
	if anchor.ID == "" {
		return nil, errors.New("anchor id is empty")
	}

	jsonData, err := json.Marshal(AnchorPayload{AnchorID: anchor.ID, Type: anchorPayloadType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal anchor payload")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseAnchorQR parses scanned marker text and returns the anchor ID
func (s *qrcodeService) ParseAnchorQR(qrData string) (string, error) {
	var data AnchorPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal anchor payload")
	}

	if data.Type != anchorPayloadType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if strings.TrimSpace(data.AnchorID) == "" {
		return "", errors.New("anchor id is empty")
	}

	return data.AnchorID, nil
}
