package navigation

import (
	"context"
	"math"
	"sync"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"
)

const defaultRerouteWorkers = 4

// RerouteEngine switches between instances of the same destination when a
// different one becomes meaningfully closer by path distance.
type RerouteEngine struct {
	oracle    service.PathOracle
	interval  time.Duration
	threshold float64
	workers   int

	lastEvaluation time.Time
}

// NewRerouteEngine validates cfg and returns an engine querying oracle.
func NewRerouteEngine(oracle service.PathOracle, cfg config.RerouteConfig) (*RerouteEngine, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = defaultRerouteWorkers
	}

	return &RerouteEngine{
		oracle:    oracle,
		interval:  cfg.EvaluationInterval,
		threshold: cfg.Threshold,
		workers:   workers,
	}, nil
}

// Due reports whether the evaluation interval has elapsed.
func (r *RerouteEngine) Due(now time.Time) bool {
	return now.Sub(r.lastEvaluation) >= r.interval
}

// MarkEvaluated restarts the evaluation interval at now.
func (r *RerouteEngine) MarkEvaluated(now time.Time) {
	r.lastEvaluation = now
}

// Evaluate returns the instance to switch to, or nil to keep current. A
// single candidate never switches. Unreachable candidates are never chosen.
func (r *RerouteEngine) Evaluate(
	ctx context.Context,
	current entity.TargetInstance,
	candidates []entity.TargetInstance,
	userPosition entity.Point,
) (*entity.TargetInstance, error) {
	if len(candidates) <= 1 {
		return nil, nil
	}

	pool := withInstance(candidates, current)
	distances, err := r.measure(ctx, pool, userPosition)
	if err != nil {
		return nil, err
	}

	bestIdx, currentIdx := -1, -1
	for idx, candidate := range pool {
		if candidate.SameAs(current) {
			currentIdx = idx
		}
		if bestIdx < 0 || distances[idx] < distances[bestIdx] {
			bestIdx = idx
		}
	}

	best := pool[bestIdx]
	if math.IsInf(distances[bestIdx], 1) || best.SameAs(current) {
		return nil, nil
	}

	if distances[currentIdx]-distances[bestIdx] > r.threshold {
		return &best, nil
	}

	return nil, nil
}

// Best picks the instance with the shortest path from userPosition. When no
// instance is reachable it falls back to the straight-line nearest one.
func (r *RerouteEngine) Best(
	ctx context.Context,
	candidates []entity.TargetInstance,
	userPosition entity.Point,
) (entity.TargetInstance, error) {
	switch len(candidates) {
	case 0:
		return entity.TargetInstance{}, domainerrors.ErrInvalidInstanceSet
	case 1:
		return candidates[0], nil
	}

	distances, err := r.measure(ctx, candidates, userPosition)
	if err != nil {
		return entity.TargetInstance{}, err
	}

	bestIdx := 0
	for idx := range candidates {
		if distances[idx] < distances[bestIdx] {
			bestIdx = idx
		}
	}

	if math.IsInf(distances[bestIdx], 1) {
		return nearestStraightLine(candidates, userPosition), nil
	}

	return candidates[bestIdx], nil
}

func withInstance(candidates []entity.TargetInstance, current entity.TargetInstance) []entity.TargetInstance {
	for _, candidate := range candidates {
		if candidate.SameAs(current) {
			return candidates
		}
	}

	pool := make([]entity.TargetInstance, 0, len(candidates)+1)
	pool = append(pool, current)

	return append(pool, candidates...)
}

func nearestStraightLine(candidates []entity.TargetInstance, userPosition entity.Point) entity.TargetInstance {
	bestIdx := 0
	bestDist := math.MaxFloat64
	for idx, candidate := range candidates {
		if dist := userPosition.DistanceTo(candidate.Position); dist < bestDist {
			bestDist = dist
			bestIdx = idx
		}
	}

	return candidates[bestIdx]
}

type distanceResult struct {
	idx      int
	distance float64
	err      error
}

// measure queries path distances to every candidate with a bounded worker
// pool. Unreachable candidates get +Inf.
func (r *RerouteEngine) measure(ctx context.Context, candidates []entity.TargetInstance, userPosition entity.Point) ([]float64, error) {
	distances := make([]float64, len(candidates))

	jobs := make(chan int, len(candidates))
	resultsCh := make(chan distanceResult, len(candidates))

	workerCount := min(r.workers, len(candidates))
	var waitGroup sync.WaitGroup
	for workerIdx := 0; workerIdx < workerCount; workerIdx++ {
		waitGroup.Add(1)
		go r.distanceWorker(ctx, &waitGroup, userPosition, candidates, jobs, resultsCh)
	}

	for idx := range candidates {
		jobs <- idx
	}
	close(jobs)

	go func() {
		waitGroup.Wait()
		close(resultsCh)
	}()

	var errs []error
	for res := range resultsCh {
		if res.err != nil {
			errs = append(errs, res.err)

			continue
		}
		distances[res.idx] = res.distance
	}

	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "reroute evaluation canceled")
	}

	if len(errs) > 0 {
		return nil, errors.Wrap(errors.Join(errs...), "reroute evaluation failed")
	}

	return distances, nil
}

func (r *RerouteEngine) distanceWorker(
	ctx context.Context,
	waitGroup *sync.WaitGroup,
	userPosition entity.Point,
	candidates []entity.TargetInstance,
	jobs <-chan int,
	resultsCh chan<- distanceResult,
) {
	defer waitGroup.Done()

	for idx := range jobs {
		if ctx.Err() != nil {
			return
		}

		path, err := r.oracle.Solve(ctx, userPosition, candidates[idx].Position)
		switch {
		case errors.Is(err, service.ErrUnreachable):
			resultsCh <- distanceResult{idx: idx, distance: math.Inf(1)}
		case err != nil:
			resultsCh <- distanceResult{idx: idx, err: err}
		case path.IsEmpty():
			resultsCh <- distanceResult{idx: idx, distance: math.Inf(1)}
		default:
			resultsCh <- distanceResult{idx: idx, distance: path.Length()}
		}
	}
}
