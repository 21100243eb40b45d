package loop

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/errors"
	"wayfinder/internal/infra/metrics"
	"wayfinder/internal/infra/position"
	mockSvc "wayfinder/internal/mocks/service"
	mockUsecase "wayfinder/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const testInterval = 2 * time.Millisecond

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serveAsync(l *TickLoop) <-chan error {
	result := make(chan error, 1)
	go func() { result <- l.Serve(context.Background()) }()

	return result
}

func TestTickLoop_ReplaysTrackUntilExhausted(t *testing.T) {
	source, err := position.NewTrackSource([]entity.Point{{X: 1}, {X: 2}, {X: 3}}, false)
	require.NoError(t, err)

	navigation := mockUsecase.NewMockNavigationUsecase(t)
	var ticked []entity.Point
	navigation.EXPECT().Tick(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p entity.Point) { ticked = append(ticked, p) }).
		Return(nil).Times(3)

	l := newTickLoop(testInterval, source, navigation, nil, discardLogger())

	select {
	case err := <-serveAsync(l):
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after the track ended")
	}

	assert.Equal(t, []entity.Point{{X: 1}, {X: 2}, {X: 3}}, ticked)
}

func TestTickLoop_SkipsUnavailablePositionsAndErrors(t *testing.T) {
	source := mockSvc.NewMockPositionSource(t)
	source.EXPECT().CurrentPosition(mock.Anything).Return(entity.Point{}, domainerrors.ErrPositionUnavailable).Once()
	source.EXPECT().CurrentPosition(mock.Anything).Return(entity.Point{}, errors.New("sensor glitch")).Once()
	source.EXPECT().CurrentPosition(mock.Anything).Return(entity.Point{X: 4}, nil).Once()
	source.EXPECT().CurrentPosition(mock.Anything).Return(entity.Point{X: 5}, nil).Once()
	source.EXPECT().CurrentPosition(mock.Anything).Return(entity.Point{X: 5}, position.ErrTrackExhausted).Once()

	navigation := mockUsecase.NewMockNavigationUsecase(t)
	navigation.EXPECT().Tick(mock.Anything, entity.Point{X: 4}).Return(errors.New("oracle down")).Once()
	navigation.EXPECT().Tick(mock.Anything, entity.Point{X: 5}).Return(nil).Once()

	m := metrics.New()
	l := newTickLoop(testInterval, source, navigation, m, discardLogger())

	select {
	case err := <-serveAsync(l):
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestTickLoop_Stop(t *testing.T) {
	source := mockSvc.NewMockPositionSource(t)
	source.EXPECT().CurrentPosition(mock.Anything).Return(entity.Point{}, nil).Maybe()

	navigation := mockUsecase.NewMockNavigationUsecase(t)
	navigation.EXPECT().Tick(mock.Anything, mock.Anything).Return(nil).Maybe()

	l := newTickLoop(testInterval, source, navigation, nil, discardLogger())
	result := serveAsync(l)

	time.Sleep(10 * testInterval)
	l.Stop()
	l.Stop()

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestNewTickLoop(t *testing.T) {
	lifecycle := fxtest.NewLifecycle(t)

	cfg := &config.Config{}
	navigation := config.DefaultNavigationConfig()
	cfg.Navigation = &navigation

	d, err := NewTickLoop(LoopParams{
		Lifecycle:    lifecycle,
		Config:       cfg,
		Logger:       discardLogger(),
		NavigationUC: mockUsecase.NewMockNavigationUsecase(t),
		Source:       mockSvc.NewMockPositionSource(t),
	})
	require.NoError(t, err)
	assert.Equal(t, navigation.TickInterval, d.(*TickLoop).interval)

	navigation.TickInterval = 0
	_, err = NewTickLoop(LoopParams{
		Lifecycle:    lifecycle,
		Config:       cfg,
		NavigationUC: mockUsecase.NewMockNavigationUsecase(t),
		Source:       mockSvc.NewMockPositionSource(t),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidConfig)
}
