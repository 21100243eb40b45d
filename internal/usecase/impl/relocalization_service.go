package impl

import (
	"context"
	"log/slog"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/repository"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"
	"wayfinder/internal/usecase"

	"go.uber.org/fx"
)

// RelocalizationServiceParams holds dependencies for RelocalizationService, injected by Fx.
type RelocalizationServiceParams struct {
	fx.In

	AnchorRepo    repository.AnchorRepository
	QRCodeService service.QRCodeService
	PositionSink  service.PositionSink
	Logger        *slog.Logger
}

type relocalizationService struct {
	anchorRepo    repository.AnchorRepository
	qrCodeService service.QRCodeService
	positionSink  service.PositionSink
	logger        *slog.Logger
}

// NewRelocalizationService creates a new relocalization service
func NewRelocalizationService(params RelocalizationServiceParams) usecase.RelocalizationUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &relocalizationService{
		anchorRepo:    params.AnchorRepo,
		qrCodeService: params.QRCodeService,
		positionSink:  params.PositionSink,
		logger:        logger,
	}
}

func (s *relocalizationService) ListAnchors(ctx context.Context) ([]entity.Anchor, error) {
	anchors, err := s.anchorRepo.ListAnchors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list anchors")
	}

	return anchors, nil
}

func (s *relocalizationService) AnchorMarker(ctx context.Context, anchorID string) ([]byte, error) {
	anchor, err := s.anchorRepo.FindAnchorByID(ctx, anchorID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCodeService.GenerateAnchorQR(*anchor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate anchor marker")
	}

	return png, nil
}

// Relocalize resolves the scanned payload and pushes the anchor position
func (s *relocalizationService) Relocalize(ctx context.Context, payload string) (*entity.Anchor, error) {
	anchorID, err := s.qrCodeService.ParseAnchorQR(payload)
	if err != nil {
		return nil, domainerrors.ErrInvalidAnchorPayload.WithDetails(err.Error())
	}

	anchor, err := s.anchorRepo.FindAnchorByID(ctx, anchorID)
	if err != nil {
		return nil, err
	}

	if err := s.positionSink.UpdatePosition(ctx, anchor.Position); err != nil {
		return nil, errors.Wrap(err, "failed to update position from anchor")
	}

	s.logger.Info("Relocalized from anchor",
		slog.String("anchor_id", anchor.ID),
		slog.String("position", anchor.Position.String()),
	)

	return anchor, nil
}
