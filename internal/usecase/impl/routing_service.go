package impl

import (
	"context"
	"sync"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"
	"wayfinder/internal/usecase"

	"go.uber.org/fx"
)

const defaultRouteWorkers = 4

// RoutingServiceParams holds dependencies for RoutingService, injected by Fx.
type RoutingServiceParams struct {
	fx.In

	Config *config.Config
	Oracle service.PathOracle
}

// routingService implements the RoutingUsecase interface
type routingService struct {
	oracle  service.PathOracle
	workers int
}

// NewRoutingService creates a new routing service instance
func NewRoutingService(params RoutingServiceParams) usecase.RoutingUsecase {
	workers := defaultRouteWorkers
	if params.Config != nil && params.Config.Navigation != nil && params.Config.Navigation.Reroute.Workers > 0 {
		workers = params.Config.Navigation.Reroute.Workers
	}

	return &routingService{
		oracle:  params.Oracle,
		workers: workers,
	}
}

// OneToMany calculates routes from one source to multiple targets
func (s *routingService) OneToMany(ctx context.Context, source entity.Point, targets []entity.Point) (*usecase.OneToManyResult, error) {
	startTime := time.Now()

	results := make([]usecase.RouteResult, len(targets))
	if len(targets) > 0 {
		targetCh := make(chan int, len(targets))
		resultCh := make(chan routeResultWithIndex, len(targets))

		workerGroup := s.spawnRouteWorkers(ctx, s.workerCount(len(targets)), targetCh, resultCh, source, targets)

		go s.dispatchRouteWork(ctx, targetCh, len(targets))
		if err := collectRouteResults(resultCh, results, workerGroup); err != nil {
			return nil, err
		}
	}

	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "routing calculation canceled")
	}

	return &usecase.OneToManyResult{
		Source:   source,
		Targets:  targets,
		Results:  results,
		Duration: time.Since(startTime),
	}, nil
}

// CalculateRoute calculates the walking route between two points
func (s *routingService) CalculateRoute(ctx context.Context, source, target entity.Point) (*usecase.RouteResult, error) {
	result, err := s.route(ctx, source, target)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// route absorbs ErrUnreachable into an unreachable result
func (s *routingService) route(ctx context.Context, source, target entity.Point) (usecase.RouteResult, error) {
	result := usecase.RouteResult{Source: source, Target: target}

	path, err := s.oracle.Solve(ctx, source, target)
	switch {
	case errors.Is(err, service.ErrUnreachable):
		return result, nil
	case err != nil:
		return result, errors.Wrap(err, "failed to solve route")
	}

	result.Path = path
	result.Distance = path.Length()
	result.IsReachable = !path.IsEmpty()

	return result, nil
}

func (s *routingService) workerCount(targetCount int) int {
	if targetCount < s.workers {
		return targetCount
	}

	return s.workers
}

type routeResultWithIndex struct {
	index  int
	result usecase.RouteResult
	err    error
}

func (s *routingService) spawnRouteWorkers(
	ctx context.Context,
	workerCount int,
	targetCh <-chan int,
	resultCh chan<- routeResultWithIndex,
	source entity.Point,
	targets []entity.Point,
) *sync.WaitGroup {
	var workerGroup sync.WaitGroup

	for range workerCount {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range targetCh {
				if ctx.Err() != nil {
					return
				}

				result, err := s.route(ctx, source, targets[idx])
				resultCh <- routeResultWithIndex{index: idx, result: result, err: err}
			}
		}()
	}

	return &workerGroup
}

func (s *routingService) dispatchRouteWork(ctx context.Context, targetCh chan<- int, targetCount int) {
	defer close(targetCh)

	for i := range targetCount {
		if ctx.Err() != nil {
			return
		}

		targetCh <- i
	}
}

// collectRouteResults fills results and returns the first error of the lowest index
func collectRouteResults(resultCh chan routeResultWithIndex, results []usecase.RouteResult, workerGroup *sync.WaitGroup) error {
	go func() {
		workerGroup.Wait()
		close(resultCh)
	}()

	firstErrIndex := len(results)
	var firstErr error
	for res := range resultCh {
		results[res.index] = res.result
		if res.err != nil && res.index < firstErrIndex {
			firstErrIndex, firstErr = res.index, res.err
		}
	}

	return firstErr
}
