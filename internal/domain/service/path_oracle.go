package service

import (
	"context"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/errors"
)

// ErrUnreachable is returned by a PathOracle when no path connects origin and
// destination. It is an expected steady-state condition, e.g. while the user
// walks between floors.
var ErrUnreachable = errors.New("destination is unreachable")

// PathOracle solves shortest paths over the navigable surface
type PathOracle interface {
	// Solve returns the ordered waypoints from origin to destination, or
	// ErrUnreachable. Implementations must be safe for concurrent use.
	Solve(ctx context.Context, origin, destination entity.Point) (entity.Path, error)
}
