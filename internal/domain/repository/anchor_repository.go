package repository

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// AnchorRepository defines read access to the building's QR anchors
type AnchorRepository interface {
	ListAnchors(ctx context.Context) ([]entity.Anchor, error)

	// FindAnchorByID returns ErrAnchorNotFound when no anchor matches
	FindAnchorByID(ctx context.Context, id string) (*entity.Anchor, error)
}
