package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"wayfinder/config"
	"wayfinder/internal/delivery"
	"wayfinder/internal/delivery/http"
	"wayfinder/internal/delivery/http/middleware"
	"wayfinder/internal/delivery/http/router/handler"
	"wayfinder/internal/delivery/loop"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"
	"wayfinder/internal/infra/effects"
	logs "wayfinder/internal/infra/log"
	"wayfinder/internal/infra/metrics"
	"wayfinder/internal/infra/persistence/building"
	"wayfinder/internal/infra/position"
	"wayfinder/internal/infra/qrcode"
	"wayfinder/internal/infra/routing/navgraph"
	"wayfinder/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		newGraphEngine,
		newBuildingStore,
	)
}

// newGraphEngine loads the navigation graph of the configured building
func newGraphEngine(cfg *config.Config, logger *slog.Logger) (*navgraph.Engine, error) {
	engine := navgraph.NewEngine(navgraph.EngineConfigFrom(*cfg.Routing), logger)
	if err := engine.LoadData(cfg.Building.DataPath); err != nil {
		return nil, errors.Wrap(err, "failed to load navigation graph")
	}

	return engine, nil
}

func newBuildingStore(cfg *config.Config, logger *slog.Logger) (*building.Store, error) {
	return building.NewStore(cfg.Building.DataPath, logger)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			building.NewDestinationRepository,
			building.NewAnchorRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			qrcode.NewQRCodeServiceFromConfig,
			newPathOracle,
			newPositionSource,
			effects.NewMuteSettings,
			effects.NewBroadcaster,
			newEffectPorts,
		),
	)
}

// newPathOracle times every graph query
func newPathOracle(engine *navgraph.Engine, m *metrics.Metrics) service.PathOracle {
	return m.InstrumentOracle(engine)
}

// newPositionSource selects where positions come from. The same source
// receives client updates and relocalization fixes.
func newPositionSource(cfg *config.Config, logger *slog.Logger) (service.PositionSource, service.PositionSink, error) {
	switch strings.ToLower(cfg.Position.Source) {
	case "", "push":
		source := position.NewPushSource()

		return source, source, nil
	case "track":
		source, err := position.LoadTrack(cfg.Position.TrackPath, cfg.Position.Loop)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to load position track")
		}
		logger.Info("Replaying position track",
			slog.String("path", cfg.Position.TrackPath),
			slog.Int("points", source.Len()),
			slog.Bool("loop", cfg.Position.Loop),
		)

		return source, source, nil
	default:
		return nil, nil, errors.Errorf("unknown position source %q", cfg.Position.Source)
	}
}

// newEffectPorts logs and streams every effect, honoring the mute settings
func newEffectPorts(
	logger *slog.Logger,
	broadcaster *effects.Broadcaster,
	mute *effects.MuteSettings,
	m *metrics.Metrics,
) service.EffectPorts {
	fanout := effects.Fanout{
		effects.NewLogPorts(logger),
		broadcaster,
	}

	return m.InstrumentEffects(effects.NewGate(fanout, mute))
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNavigationService,
			impl.NewCatalogService,
			impl.NewRelocalizationService,
			impl.NewRoutingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNavigationHandler,
			handler.NewDestinationHandler,
			handler.NewAnchorHandler,
			handler.NewSettingsHandler,
			handler.NewStreamHandler,
			handler.NewRouteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				loop.NewTickLoop,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
