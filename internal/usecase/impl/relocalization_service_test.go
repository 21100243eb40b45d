package impl

import (
	"context"
	"testing"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/errors"
	mockRepo "wayfinder/internal/mocks/repository"
	mockSvc "wayfinder/internal/mocks/service"
	"wayfinder/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relocalizationFixture struct {
	service      usecase.RelocalizationUsecase
	anchorRepo   *mockRepo.MockAnchorRepository
	qrCode       *mockSvc.MockQRCodeService
	positionSink *mockSvc.MockPositionSink
}

func createTestRelocalizationService(t *testing.T) *relocalizationFixture {
	t.Helper()

	anchorRepo := mockRepo.NewMockAnchorRepository(t)
	qrCode := mockSvc.NewMockQRCodeService(t)
	positionSink := mockSvc.NewMockPositionSink(t)

	return &relocalizationFixture{
		service: NewRelocalizationService(RelocalizationServiceParams{
			AnchorRepo:    anchorRepo,
			QRCodeService: qrCode,
			PositionSink:  positionSink,
		}),
		anchorRepo:   anchorRepo,
		qrCode:       qrCode,
		positionSink: positionSink,
	}
}

var lobbyAnchor = entity.Anchor{
	ID:       "lobby-1",
	Label:    "Lobby entrance",
	Position: entity.Point{X: 2, Y: 0, Z: 3},
}

func TestRelocalizationService_Relocalize(t *testing.T) {
	fx := createTestRelocalizationService(t)
	ctx := context.Background()

	payload := `{"anchor_id":"lobby-1","type":"anchor"}`

	fx.qrCode.EXPECT().ParseAnchorQR(payload).Return("lobby-1", nil)
	fx.anchorRepo.EXPECT().FindAnchorByID(ctx, "lobby-1").Return(&lobbyAnchor, nil)
	fx.positionSink.EXPECT().UpdatePosition(ctx, lobbyAnchor.Position).Return(nil)

	anchor, err := fx.service.Relocalize(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, lobbyAnchor, *anchor)
}

func TestRelocalizationService_Relocalize_InvalidPayload(t *testing.T) {
	fx := createTestRelocalizationService(t)

	fx.qrCode.EXPECT().ParseAnchorQR("garbage").Return("", errors.New("invalid character 'g'"))

	_, err := fx.service.Relocalize(context.Background(), "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAnchorPayload)
}

func TestRelocalizationService_Relocalize_UnknownAnchor(t *testing.T) {
	fx := createTestRelocalizationService(t)
	ctx := context.Background()

	fx.qrCode.EXPECT().ParseAnchorQR("payload").Return("missing", nil)
	fx.anchorRepo.EXPECT().FindAnchorByID(ctx, "missing").Return(nil, domainerrors.ErrAnchorNotFound)

	_, err := fx.service.Relocalize(ctx, "payload")
	assert.ErrorIs(t, err, domainerrors.ErrAnchorNotFound)
}

func TestRelocalizationService_Relocalize_SinkError(t *testing.T) {
	fx := createTestRelocalizationService(t)
	ctx := context.Background()

	fx.qrCode.EXPECT().ParseAnchorQR("payload").Return("lobby-1", nil)
	fx.anchorRepo.EXPECT().FindAnchorByID(ctx, "lobby-1").Return(&lobbyAnchor, nil)
	fx.positionSink.EXPECT().UpdatePosition(ctx, lobbyAnchor.Position).Return(errors.New("track source is read-only"))

	_, err := fx.service.Relocalize(ctx, "payload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update position from anchor")
}

func TestRelocalizationService_AnchorMarker(t *testing.T) {
	fx := createTestRelocalizationService(t)
	ctx := context.Background()

	png := []byte{0x89, 'P', 'N', 'G'}
	fx.anchorRepo.EXPECT().FindAnchorByID(ctx, "lobby-1").Return(&lobbyAnchor, nil)
	fx.qrCode.EXPECT().GenerateAnchorQR(lobbyAnchor).Return(png, nil)

	marker, err := fx.service.AnchorMarker(ctx, "lobby-1")
	require.NoError(t, err)
	assert.Equal(t, png, marker)
}

func TestRelocalizationService_ListAnchors(t *testing.T) {
	fx := createTestRelocalizationService(t)
	ctx := context.Background()

	fx.anchorRepo.EXPECT().ListAnchors(ctx).Return([]entity.Anchor{lobbyAnchor}, nil)

	anchors, err := fx.service.ListAnchors(ctx)
	require.NoError(t, err)
	assert.Len(t, anchors, 1)
}
