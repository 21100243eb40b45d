package navigation

import (
	"context"
	"sync"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
)

// distanceOracle answers with a two-point path whose length is the
// configured distance for the destination. Destinations without an entry
// are unreachable.
type distanceOracle struct {
	mu        sync.Mutex
	distances map[entity.Point]float64
	calls     int
}

func newDistanceOracle(distances map[entity.Point]float64) *distanceOracle {
	return &distanceOracle{distances: distances}
}

func (o *distanceOracle) Solve(_ context.Context, origin, destination entity.Point) (entity.Path, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.calls++
	distance, ok := o.distances[destination]
	if !ok {
		return nil, service.ErrUnreachable
	}

	return entity.Path{origin, {X: origin.X + distance, Y: origin.Y, Z: origin.Z}}, nil
}

func (o *distanceOracle) callCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.calls
}

func instance(name string, x float64) entity.TargetInstance {
	return entity.TargetInstance{Name: name, Position: entity.Point{X: x}}
}
