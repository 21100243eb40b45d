package http

import (
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/delivery/http/middleware"
	"wayfinder/internal/delivery/http/router"
	"wayfinder/internal/delivery/http/router/handler"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/errors"
	"wayfinder/internal/infra/effects"
	"wayfinder/internal/infra/metrics"
	mockSvc "wayfinder/internal/mocks/service"
	mockUsecase "wayfinder/internal/mocks/usecase"
	"wayfinder/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type testServer struct {
	echo           *echo.Echo
	navigation     *mockUsecase.MockNavigationUsecase
	catalog        *mockUsecase.MockCatalogUsecase
	relocalization *mockUsecase.MockRelocalizationUsecase
	routing        *mockUsecase.MockRoutingUsecase
	positions      *mockSvc.MockPositionSink
	broadcaster    *effects.Broadcaster
	mute           *effects.MuteSettings
	stream         *handler.StreamHandler
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lifecycle := fxtest.NewLifecycle(t)

	ts := &testServer{
		navigation:     mockUsecase.NewMockNavigationUsecase(t),
		catalog:        mockUsecase.NewMockCatalogUsecase(t),
		relocalization: mockUsecase.NewMockRelocalizationUsecase(t),
		routing:        mockUsecase.NewMockRoutingUsecase(t),
		positions:      mockSvc.NewMockPositionSink(t),
		broadcaster:    effects.NewBroadcaster(logger),
		mute:           effects.NewMuteSettings(),
	}
	ts.stream = handler.NewStreamHandler(handler.StreamHandlerParams{
		Lifecycle:   lifecycle,
		Broadcaster: ts.broadcaster,
		Logger:      logger,
	})

	cfg := &config.Config{}
	m := metrics.New()

	ts.echo = newEcho(HTTPParams{
		Config:              cfg,
		Logger:              logger,
		ErrorMiddleware:     middleware.NewErrorMiddleware(logger),
		LoggerMiddleware:    middleware.NewLoggerMiddleware(logger, cfg, m),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
		RouterParams: router.RouterParams{
			NavigationHandler: handler.NewNavigationHandler(handler.NavigationHandlerParams{
				NavigationUC: ts.navigation,
				CatalogUC:    ts.catalog,
				PositionSink: ts.positions,
				Logger:       logger,
			}),
			DestinationHandler: handler.NewDestinationHandler(handler.DestinationHandlerParams{CatalogUC: ts.catalog}),
			AnchorHandler: handler.NewAnchorHandler(handler.AnchorHandlerParams{
				RelocalizationUC: ts.relocalization,
				Logger:           logger,
			}),
			SettingsHandler: handler.NewSettingsHandler(handler.SettingsHandlerParams{Mute: ts.mute}),
			StreamHandler:   ts.stream,
			RouteHandler:    handler.NewRouteHandler(handler.RouteHandlerParams{RoutingUC: ts.routing}),
			Metrics:         m,
		},
	})

	return ts
}

func (ts *testServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, nethttp.MethodGet, "/health", "")

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderXRequestID))
}

func TestServer_SelectDestination(t *testing.T) {
	ts := newTestServer(t)

	restroom := entity.TargetInstance{Name: "Restroom", Position: entity.Point{X: 10}}
	ts.catalog.EXPECT().Navigate(mock.Anything, "restroom").
		Return(&usecase.Destination{Name: "Restroom", Instances: []entity.TargetInstance{restroom}}, nil).Once()
	ts.navigation.EXPECT().Status().Return(usecase.NavigationStatus{
		Destination: "Restroom",
		Instance:    &restroom,
		Reachable:   true,
	}).Once()

	rec, env := ts.do(t, nethttp.MethodPost, "/navigation/destination", `{"name":"restroom"}`)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	var status usecase.NavigationStatus
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "Restroom", status.Destination)
	assert.True(t, status.Reachable)
}

func TestServer_SelectDestination_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(ts *testServer)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing name",
			body:       `{}`,
			wantStatus: nethttp.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: nethttp.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "unknown destination",
			body: `{"name":"Pool"}`,
			setup: func(ts *testServer) {
				ts.catalog.EXPECT().Navigate(mock.Anything, "Pool").
					Return(nil, errors.Wrap(domainerrors.ErrDestinationNotFound.WithDetails("Pool"), "failed to find destination")).Once()
			},
			wantStatus: nethttp.StatusNotFound,
			wantCode:   "DESTINATION_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			if tt.setup != nil {
				tt.setup(ts)
			}

			rec, env := ts.do(t, nethttp.MethodPost, "/navigation/destination", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestServer_ClearAndStatus(t *testing.T) {
	ts := newTestServer(t)

	ts.navigation.EXPECT().Clear().Return().Once()
	ts.navigation.EXPECT().Status().Return(usecase.NavigationStatus{}).Twice()

	rec, env := ts.do(t, nethttp.MethodDelete, "/navigation/destination", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "Navigation cleared", env.Message)

	rec, _ = ts.do(t, nethttp.MethodGet, "/navigation", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestServer_UpdatePosition(t *testing.T) {
	ts := newTestServer(t)

	ts.positions.EXPECT().UpdatePosition(mock.Anything, entity.Point{X: 1, Y: 0, Z: 2}).Return(nil).Once()

	rec, _ := ts.do(t, nethttp.MethodPost, "/navigation/position", `{"x":1,"y":0,"z":2}`)
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)

	rec, env := ts.do(t, nethttp.MethodPost, "/navigation/position", `{"x":1,"y":0}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestServer_UpdatePosition_Unavailable(t *testing.T) {
	ts := newTestServer(t)

	ts.positions.EXPECT().UpdatePosition(mock.Anything, mock.Anything).
		Return(domainerrors.ErrValidationFailed.WithDetails("position must be finite")).Once()

	rec, env := ts.do(t, nethttp.MethodPost, "/navigation/position", `{"x":1,"y":0,"z":2}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "position must be finite", env.Error.Details)
}

func TestServer_Destinations(t *testing.T) {
	ts := newTestServer(t)

	ts.catalog.EXPECT().ListDestinations(mock.Anything).Return([]usecase.Destination{{Name: "Cafe"}, {Name: "Restroom"}}, nil).Once()

	rec, env := ts.do(t, nethttp.MethodGet, "/destinations", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var destinations []usecase.Destination
	require.NoError(t, json.Unmarshal(env.Data, &destinations))
	assert.Len(t, destinations, 2)
}

func TestServer_AnchorMarker(t *testing.T) {
	ts := newTestServer(t)

	png := []byte("\x89PNG\r\n\x1a\n")
	ts.relocalization.EXPECT().AnchorMarker(mock.Anything, "lobby").Return(png, nil).Once()
	ts.relocalization.EXPECT().AnchorMarker(mock.Anything, "attic").
		Return(nil, domainerrors.ErrAnchorNotFound.WithDetails("attic")).Once()

	rec, _ := ts.do(t, nethttp.MethodGet, "/anchors/lobby/qr", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	rec, env := ts.do(t, nethttp.MethodGet, "/anchors/attic/qr", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ANCHOR_NOT_FOUND", env.Error.Code)
}

func TestServer_Relocalize(t *testing.T) {
	ts := newTestServer(t)

	lobby := &entity.Anchor{ID: "lobby", Label: "Lobby", Position: entity.Point{X: 3, Z: 4}}
	ts.relocalization.EXPECT().Relocalize(mock.Anything, `{"type":"anchor","anchor_id":"lobby"}`).Return(lobby, nil).Once()
	ts.relocalization.EXPECT().Relocalize(mock.Anything, "garbage").
		Return(nil, domainerrors.ErrInvalidAnchorPayload).Once()

	rec, env := ts.do(t, nethttp.MethodPost, "/relocalize", `{"payload":"{\"type\":\"anchor\",\"anchor_id\":\"lobby\"}"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var anchor entity.Anchor
	require.NoError(t, json.Unmarshal(env.Data, &anchor))
	assert.Equal(t, "lobby", anchor.ID)

	rec, env = ts.do(t, nethttp.MethodPost, "/relocalize", `{"payload":"garbage"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ANCHOR_PAYLOAD", env.Error.Code)
}

func TestServer_Routes(t *testing.T) {
	ts := newTestServer(t)

	from := entity.Point{X: 1}
	targets := []entity.Point{{X: 4, Z: 4}, {X: 10, Y: 4}}
	ts.routing.EXPECT().OneToMany(mock.Anything, from, targets).Return(&usecase.OneToManyResult{
		Source:  from,
		Targets: targets,
		Results: []usecase.RouteResult{
			{Source: from, Target: targets[0], Distance: 5, IsReachable: true},
			{Source: from, Target: targets[1]},
		},
	}, nil).Once()

	rec, env := ts.do(t, nethttp.MethodPost, "/routes",
		`{"from":{"x":1,"y":0,"z":0},"targets":[{"x":4,"y":0,"z":4},{"x":10,"y":4,"z":0}]}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var result usecase.OneToManyResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Len(t, result.Results, 2)
	assert.True(t, result.Results[0].IsReachable)
	assert.False(t, result.Results[1].IsReachable)

	rec, env = ts.do(t, nethttp.MethodPost, "/routes", `{"from":{"x":1,"y":0,"z":0},"targets":[]}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestServer_MuteSettings(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, nethttp.MethodPut, "/settings/mute", `{"sound_muted":true}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var settings handler.MuteResponse
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.True(t, settings.SoundMuted)
	assert.False(t, settings.VibrationMuted)
	assert.True(t, ts.mute.SoundMuted())

	ts.do(t, nethttp.MethodPut, "/settings/mute", `{"vibration_muted":true}`)
	assert.True(t, ts.mute.SoundMuted())
	assert.True(t, ts.mute.VibrationMuted())
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t)

	ts.do(t, nethttp.MethodGet, "/health", "")

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `wayfinder_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestServer_Stream(t *testing.T) {
	ts := newTestServer(t)
	server := httptest.NewServer(ts.echo)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/navigation/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return ts.broadcaster.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	ts.broadcaster.OnReroute("Cafe")
	ts.broadcaster.OnDirectionInstruction(entity.InstructionTurnRight)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var reroute effects.Event
	require.NoError(t, conn.ReadJSON(&reroute))
	assert.Equal(t, effects.EventReroute, reroute.Type)
	assert.Equal(t, "Cafe", reroute.Target)

	var direction effects.Event
	require.NoError(t, conn.ReadJSON(&direction))
	assert.Equal(t, effects.EventDirection, direction.Type)
	require.NotNil(t, direction.Instruction)
	assert.Equal(t, entity.InstructionTurnRight, *direction.Instruction)

	ts.stream.Close()

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway))
	require.Eventually(t, func() bool { return ts.broadcaster.Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}
