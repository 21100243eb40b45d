package usecase

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// RelocalizationUsecase defines QR anchor use cases
type RelocalizationUsecase interface {
	// ListAnchors returns every anchor of the building
	ListAnchors(ctx context.Context) ([]entity.Anchor, error)

	// AnchorMarker renders the printable QR marker of an anchor as PNG
	AnchorMarker(ctx context.Context, anchorID string) ([]byte, error)

	// Relocalize resolves scanned marker text to its anchor and reports the
	// anchor position as the user's current position
	Relocalize(ctx context.Context, payload string) (*entity.Anchor, error)
}
