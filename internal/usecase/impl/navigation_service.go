package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"
	"wayfinder/internal/navigation"
	"wayfinder/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// NavigationServiceParams holds dependencies for the navigation session, injected by Fx.
type NavigationServiceParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Oracle  service.PathOracle
	Effects service.EffectPorts
	Source  service.PositionSource `optional:"true"`
}

type channelMonitor struct {
	channel entity.Channel
	monitor *navigation.ArrivalMonitor
}

// navigationService owns one navigation session. Oracle queries run outside
// the lock; their results are applied only if no SelectDestination or Clear
// happened in between, tracked by generation.
type navigationService struct {
	logger     *slog.Logger
	effects    service.EffectPorts
	source     service.PositionSource
	planner    *navigation.PathPlanner
	reroute    *navigation.RerouteEngine
	monitors   []channelMonitor
	instructor *navigation.DirectionInstructor
	now        func() time.Time

	mu              sync.Mutex
	sessionID       uuid.UUID
	generation      uint64
	destinationName string
	candidates      []entity.TargetInstance
	activeInstance  *entity.TargetInstance
	currentPath     entity.Path
	lastPosition    *entity.Point

	// set when the instance was picked without a position; the next tick
	// ranks candidates with no threshold
	pendingInitial bool
}

// NewNavigationService creates a navigation session. Invalid tuning is
// rejected here rather than at first use.
func NewNavigationService(params NavigationServiceParams) (usecase.NavigationUsecase, error) {
	return newNavigationService(params)
}

func newNavigationService(params NavigationServiceParams) (*navigationService, error) {
	cfg := config.DefaultNavigationConfig()
	if params.Config != nil && params.Config.Navigation != nil {
		cfg = *params.Config.Navigation
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reroute, err := navigation.NewRerouteEngine(params.Oracle, cfg.Reroute)
	if err != nil {
		return nil, errors.Wrap(err, "reroute config")
	}

	instructor, err := navigation.NewDirectionInstructor(cfg.Direction)
	if err != nil {
		return nil, errors.Wrap(err, "direction config")
	}

	monitors := make([]channelMonitor, 0, len(entity.Channels()))
	for _, channel := range entity.Channels() {
		channelCfg, _ := cfg.Arrival.ForChannel(string(channel))
		monitor, err := navigation.NewArrivalMonitor(channelCfg)
		if err != nil {
			return nil, errors.Wrapf(err, "%s arrival config", channel)
		}
		monitors = append(monitors, channelMonitor{channel: channel, monitor: monitor})
	}

	sessionID := uuid.New()

	return &navigationService{
		logger:     logger.With(slog.String("session_id", sessionID.String())),
		effects:    params.Effects,
		source:     params.Source,
		planner:    navigation.NewPathPlanner(params.Oracle),
		reroute:    reroute,
		monitors:   monitors,
		instructor: instructor,
		now:        time.Now,
		sessionID:  sessionID,
	}, nil
}

// SelectDestination starts navigating to the closest instance of name
func (s *navigationService) SelectDestination(ctx context.Context, name string, instances []entity.TargetInstance) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("destination name is empty")
	}

	candidates := make([]entity.TargetInstance, 0, len(instances))
	for _, candidate := range instances {
		if candidate.Name == name {
			candidates = append(candidates, candidate)
		}
	}

	if len(candidates) == 0 {
		return domainerrors.ErrInvalidInstanceSet.WithDetails(name)
	}

	// Without any position, start on the first instance and let the next
	// tick rank them.
	initial := candidates[0]
	pending := len(candidates) > 1
	if position, ok := s.selectionPosition(ctx); ok {
		best, err := s.reroute.Best(ctx, candidates, position)
		if err != nil {
			return errors.Wrap(err, "failed to rank destination instances")
		}
		initial = best
		pending = false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.destinationName = name
	s.candidates = candidates
	s.activeInstance = &initial
	s.pendingInitial = pending
	s.currentPath = nil
	s.resetTrackingLocked()
	s.reroute.MarkEvaluated(s.now())

	s.logger.Info("Destination selected",
		slog.String("destination", name),
		slog.String("instance", initial.Key()),
		slog.Int("instances", len(candidates)),
	)

	return nil
}

// selectionPosition is the last ticked position, else a fresh sample from
// the position source.
func (s *navigationService) selectionPosition(ctx context.Context) (entity.Point, bool) {
	s.mu.Lock()
	lastPosition := s.lastPosition
	s.mu.Unlock()

	if lastPosition != nil {
		return *lastPosition, true
	}

	if s.source == nil {
		return entity.Point{}, false
	}

	position, err := s.source.CurrentPosition(ctx)
	if err != nil {
		s.logger.Debug("No position for destination ranking", slog.Any("error", err))

		return entity.Point{}, false
	}

	return position, true
}

// Clear stops navigation and drops any in-flight tick result
func (s *navigationService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if s.destinationName != "" {
		s.logger.Info("Navigation cleared", slog.String("destination", s.destinationName))
	}

	s.destinationName = ""
	s.candidates = nil
	s.activeInstance = nil
	s.pendingInitial = false
	s.currentPath = nil
	s.resetTrackingLocked()
}

func (s *navigationService) resetTrackingLocked() {
	for _, cm := range s.monitors {
		cm.monitor.Reset()
	}
	s.instructor.Reset()
}

// tickSnapshot is the state a tick works from while the lock is released
type tickSnapshot struct {
	generation uint64
	target     entity.TargetInstance
	candidates []entity.TargetInstance
	rerouteDue bool
	initial    bool
	now        time.Time
}

// Tick recomputes the path, evaluates rerouting on its own cadence, then
// runs arrival and direction checks. Effects fire after the lock is released.
func (s *navigationService) Tick(ctx context.Context, userPosition entity.Point) error {
	snapshot, active := s.beginTick(userPosition)
	if !active {
		return nil
	}

	var (
		chosen     *entity.TargetInstance
		switchTo   *entity.TargetInstance
		rerouteErr error
	)

	target := snapshot.target
	if snapshot.initial {
		best, err := s.reroute.Best(ctx, snapshot.candidates, userPosition)
		if err != nil {
			rerouteErr = err
		} else {
			target = best
			chosen = &best
		}
	}

	path, planErr := s.planner.Recompute(ctx, userPosition, &target.Position)

	if snapshot.rerouteDue {
		switchTo, rerouteErr = s.reroute.Evaluate(ctx, target, snapshot.candidates, userPosition)
	}

	effects, applied := s.applyTick(snapshot, userPosition, path, chosen, switchTo)
	for _, effect := range effects {
		effect()
	}

	if !applied {
		return nil
	}

	if rerouteErr != nil {
		s.logger.Warn("Reroute evaluation failed", slog.Any("error", rerouteErr))
	}

	if planErr != nil {
		return errors.Wrap(planErr, "tick")
	}

	return nil
}

func (s *navigationService) beginTick(userPosition entity.Point) (tickSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	position := userPosition
	s.lastPosition = &position

	if s.activeInstance == nil {
		s.currentPath = nil

		return tickSnapshot{}, false
	}

	now := s.now()
	snapshot := tickSnapshot{
		generation: s.generation,
		target:     *s.activeInstance,
		candidates: s.candidates,
		rerouteDue: !s.pendingInitial && s.reroute.Due(now),
		initial:    s.pendingInitial,
		now:        now,
	}

	if snapshot.rerouteDue {
		s.reroute.MarkEvaluated(now)
	}

	return snapshot, true
}

func (s *navigationService) applyTick(
	snapshot tickSnapshot,
	userPosition entity.Point,
	path entity.Path,
	chosen *entity.TargetInstance,
	switchTo *entity.TargetInstance,
) ([]func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snapshot.generation != s.generation {
		s.logger.Debug("Discarding superseded tick result")

		return nil, false
	}

	s.currentPath = path

	var effects []func()
	target := snapshot.target

	if chosen != nil {
		target = *chosen
		s.activeInstance = &target
		s.pendingInitial = false
		s.reroute.MarkEvaluated(snapshot.now)

		s.logger.Info("Initial instance ranked",
			slog.String("destination", target.Name),
			slog.String("instance", target.Key()),
		)
	}
	distance := path.Length()
	switched := switchTo != nil

	if switched {
		target = *switchTo
		s.activeInstance = &target
		for _, cm := range s.monitors {
			cm.monitor.Reset()
		}

		// The path in hand leads to the previous instance. It is not kept;
		// the next tick plans to the new one.
		s.currentPath = nil
		distance = userPosition.DistanceTo(target.Position)

		s.logger.Info("Rerouted to closer instance",
			slog.String("destination", target.Name),
			slog.String("from", snapshot.target.Key()),
			slog.String("to", target.Key()),
		)

		name := target.Name
		effects = append(effects, func() { s.effects.OnReroute(name) })
	}

	if path.IsEmpty() {
		return effects, true
	}

	key := target.Key()
	for _, cm := range s.monitors {
		if !cm.monitor.OnTick(distance, key, userPosition) {
			continue
		}

		s.logger.Info("Arrived",
			slog.String("channel", string(cm.channel)),
			slog.String("destination", target.Name),
			slog.Float64("distance", distance),
		)
		effects = append(effects, s.arrivalEffect(cm.channel, target.Name))
	}

	if switched {
		return effects, true
	}

	if instruction, ok := s.instructor.OnTick(path, userPosition, snapshot.now); ok {
		s.logger.Debug("Direction instruction", slog.String("instruction", instruction.String()))
		effects = append(effects, func() { s.effects.OnDirectionInstruction(instruction) })
	}

	return effects, true
}

func (s *navigationService) arrivalEffect(channel entity.Channel, name string) func() {
	switch channel {
	case entity.ChannelSound:
		return func() { s.effects.OnArrivalSound(name) }
	case entity.ChannelVibration:
		return func() { s.effects.OnArrivalVibration(name) }
	default:
		return func() { s.effects.OnArrivalDialog(name) }
	}
}

// Status returns a snapshot of the session state
func (s *navigationService) Status() usecase.NavigationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := usecase.NavigationStatus{
		SessionID:   s.sessionID,
		Destination: s.destinationName,
		Path:        append(entity.Path(nil), s.currentPath...),
		PathLength:  s.currentPath.Length(),
		Reachable:   !s.currentPath.IsEmpty(),
	}

	if s.activeInstance != nil {
		active := *s.activeInstance
		status.Instance = &active
	}

	if s.lastPosition != nil {
		position := *s.lastPosition
		status.LastPosition = &position
	}

	return status
}
