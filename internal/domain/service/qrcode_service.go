package service

import (
	"wayfinder/internal/domain/entity"
)

// QRCodeService defines the interface for anchor marker generation and parsing
type QRCodeService interface {
	// GenerateAnchorQR renders a printable marker for the anchor as PNG
	GenerateAnchorQR(anchor entity.Anchor) ([]byte, error)

	// ParseAnchorQR parses scanned marker text and returns the anchor ID
	ParseAnchorQR(qrData string) (string, error)
}
