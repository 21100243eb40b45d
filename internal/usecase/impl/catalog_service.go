package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/repository"
	"wayfinder/internal/errors"
	"wayfinder/internal/usecase"

	"go.uber.org/fx"
)

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	DestinationRepo repository.DestinationRepository
	Navigation      usecase.NavigationUsecase
	Logger          *slog.Logger
}

type catalogService struct {
	destinationRepo repository.DestinationRepository
	navigation      usecase.NavigationUsecase
	logger          *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &catalogService{
		destinationRepo: params.DestinationRepo,
		navigation:      params.Navigation,
		logger:          logger,
	}
}

// ListDestinations groups every instance by name
func (s *catalogService) ListDestinations(ctx context.Context) ([]usecase.Destination, error) {
	instances, err := s.destinationRepo.ListInstances(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list destination instances")
	}

	byName := make(map[string]*usecase.Destination)
	for _, instance := range instances {
		destination, ok := byName[instance.Name]
		if !ok {
			destination = &usecase.Destination{Name: instance.Name}
			byName[instance.Name] = destination
		}
		destination.Instances = append(destination.Instances, instance)
	}

	destinations := make([]usecase.Destination, 0, len(byName))
	for _, destination := range byName {
		destinations = append(destinations, *destination)
	}

	sort.Slice(destinations, func(i, j int) bool {
		return destinations[i].Name < destinations[j].Name
	})

	return destinations, nil
}

// FindDestination resolves name to its instance set
func (s *catalogService) FindDestination(ctx context.Context, name string) (*usecase.Destination, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("destination name is empty")
	}

	instances, err := s.destinationRepo.FindInstancesByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find destination instances")
	}

	if len(instances) == 0 {
		return nil, domainerrors.ErrDestinationNotFound.WithDetails(name)
	}

	// Spelling variants in the data collapse onto the first one seen.
	canonical := instances[0].Name
	normalized := make([]entity.TargetInstance, len(instances))
	for idx, instance := range instances {
		normalized[idx] = entity.TargetInstance{Name: canonical, Position: instance.Position}
	}

	return &usecase.Destination{
		Name:      canonical,
		Instances: normalized,
	}, nil
}

// Navigate selects the named destination on the session
func (s *catalogService) Navigate(ctx context.Context, name string) (*usecase.Destination, error) {
	destination, err := s.FindDestination(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.navigation.SelectDestination(ctx, destination.Name, destination.Instances); err != nil {
		return nil, errors.Wrap(err, "failed to select destination")
	}

	s.logger.Debug("Navigation started from catalog",
		slog.String("destination", destination.Name),
		slog.Int("instances", len(destination.Instances)),
	)

	return destination, nil
}
