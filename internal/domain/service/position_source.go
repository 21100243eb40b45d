package service

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// PositionSource supplies the user's current position once per tick
type PositionSource interface {
	CurrentPosition(ctx context.Context) (entity.Point, error)
}

// PositionSink accepts externally supplied positions, such as client
// updates or QR relocalization fixes
type PositionSink interface {
	UpdatePosition(ctx context.Context, position entity.Point) error
}
