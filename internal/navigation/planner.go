package navigation

import (
	"context"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"
)

// PathPlanner recomputes the active path through a PathOracle.
type PathPlanner struct {
	oracle service.PathOracle
}

// NewPathPlanner creates a planner backed by oracle.
func NewPathPlanner(oracle service.PathOracle) *PathPlanner {
	return &PathPlanner{oracle: oracle}
}

// Recompute returns the path from origin to destination. A nil destination
// yields an empty path without querying the oracle. An unreachable
// destination also yields an empty path and no error; any other oracle
// failure is returned alongside an empty path.
func (p *PathPlanner) Recompute(ctx context.Context, origin entity.Point, destination *entity.Point) (entity.Path, error) {
	if destination == nil {
		return nil, nil
	}

	path, err := p.oracle.Solve(ctx, origin, *destination)
	if err != nil {
		if errors.Is(err, service.ErrUnreachable) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "path oracle failed")
	}

	return path, nil
}

// PathLength is the sum of segment distances, zero below two points.
func PathLength(path entity.Path) float64 {
	return path.Length()
}
