package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"wayfinder/internal/delivery/http/middleware"
	"wayfinder/internal/infra/effects"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// writeWait is how long to wait for a write to complete
	writeWait = 10 * time.Second

	// pongWait is how long to wait for a pong response
	pongWait = 60 * time.Second

	// pingPeriod must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// clients only send control frames
	maxMessageSize = 512
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In
	fx.Lifecycle

	Broadcaster *effects.Broadcaster
	Logger      *slog.Logger
}

// StreamHandler pushes session effects to clients over a websocket
type StreamHandler struct {
	broadcaster *effects.Broadcaster
	logger      *slog.Logger
	upgrader    websocket.Upgrader

	closeOnce sync.Once
	closed    chan struct{}
}

// NewStreamHandler is the constructor for StreamHandler. Open streams are
// closed when the application stops.
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	h := newStreamHandler(params.Broadcaster, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			h.Close()

			return nil
		},
	})

	return h
}

func newStreamHandler(broadcaster *effects.Broadcaster, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		broadcaster: broadcaster,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		closed: make(chan struct{}),
	}
}

// Close ends every open stream with a close frame
func (h *StreamHandler) Close() {
	h.closeOnce.Do(func() { close(h.closed) })
}

// Stream upgrades the request and forwards effect events until either side
// goes away
func (h *StreamHandler) Stream(c echo.Context) error {
	logger := middleware.LoggerFrom(c.Request().Context(), h.logger)

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		logger.Warn("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}

	events, cancel := h.broadcaster.Subscribe()
	defer cancel()

	logger.Info("Effect stream opened", slog.String("remote_ip", c.RealIP()))

	gone := make(chan struct{})
	go h.readPump(conn, gone)
	h.writePump(conn, events, gone)

	logger.Info("Effect stream closed", slog.String("remote_ip", c.RealIP()))

	return nil
}

// readPump drains the connection so pongs and close frames are processed
func (h *StreamHandler) readPump(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump is the only writer of conn
func (h *StreamHandler) writePump(conn *websocket.Conn, events <-chan effects.Event, gone <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case event, ok := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug("Effect stream write failed", slog.Any("error", err))

				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-h.closed:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))

			return

		case <-gone:
			return
		}
	}
}
