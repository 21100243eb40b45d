// Package loop drives the navigation session from a position source at the
// configured tick interval.
package loop

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wayfinder/config"
	"wayfinder/internal/delivery"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"
	"wayfinder/internal/infra/metrics"
	"wayfinder/internal/infra/position"
	"wayfinder/internal/usecase"

	"go.uber.org/fx"
)

// Tick results recorded in metrics
const (
	resultOK         = "ok"
	resultNoPosition = "no_position"
	resultError      = "error"
)

// LoopParams holds dependencies for the tick loop, injected by Fx.
type LoopParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	NavigationUC usecase.NavigationUsecase
	Source       service.PositionSource
	Metrics      *metrics.Metrics `optional:"true"`
}

// TickLoop samples the position source and ticks the session
type TickLoop struct {
	interval   time.Duration
	source     service.PositionSource
	navigation usecase.NavigationUsecase
	metrics    *metrics.Metrics
	logger     *slog.Logger

	stopOnce sync.Once
	done     chan struct{}
}

// NewTickLoop creates the loop delivery. It stops with the application.
func NewTickLoop(params LoopParams) (delivery.Delivery, error) {
	cfg := config.DefaultNavigationConfig()
	if params.Config != nil && params.Config.Navigation != nil {
		cfg = *params.Config.Navigation
	}

	if cfg.TickInterval <= 0 {
		return nil, domainerrors.ErrInvalidConfig.WithDetails("tick interval must be positive")
	}

	l := newTickLoop(cfg.TickInterval, params.Source, params.NavigationUC, params.Metrics, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			l.Stop()

			return nil
		},
	})

	return l, nil
}

func newTickLoop(
	interval time.Duration,
	source service.PositionSource,
	navigation usecase.NavigationUsecase,
	m *metrics.Metrics,
	logger *slog.Logger,
) *TickLoop {
	if logger == nil {
		logger = slog.Default()
	}

	return &TickLoop{
		interval:   interval,
		source:     source,
		navigation: navigation,
		metrics:    m,
		logger:     logger.With(slog.String("component", "tick_loop")),
		done:       make(chan struct{}),
	}
}

// Serve ticks until ctx is done, Stop is called or a replayed track ends
func (l *TickLoop) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-l.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Info("Starting tick loop", slog.Duration("interval", l.interval))

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Tick loop stopped")

			return nil
		case <-ticker.C:
			if !l.step(ctx) {
				return nil
			}
		}
	}
}

// Stop ends Serve. It is safe to call more than once.
func (l *TickLoop) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

// step runs one tick and reports whether the loop should continue
func (l *TickLoop) step(ctx context.Context) bool {
	point, err := l.source.CurrentPosition(ctx)
	switch {
	case errors.Is(err, domainerrors.ErrPositionUnavailable):
		l.observe(resultNoPosition)

		return true
	case errors.Is(err, position.ErrTrackExhausted):
		l.logger.Info("Position track finished, stopping tick loop")

		return false
	case err != nil:
		l.observe(resultError)
		l.logger.Warn("Failed to read position", slog.Any("error", err))

		return true
	}

	if err := l.navigation.Tick(ctx, point); err != nil {
		if ctx.Err() != nil {
			return false
		}

		l.observe(resultError)
		l.logger.Warn("Navigation tick failed", slog.Any("error", err))

		return true
	}

	l.observe(resultOK)

	return true
}

func (l *TickLoop) observe(result string) {
	if l.metrics != nil {
		l.metrics.ObserveTick(result)
	}
}
