// Package ws serves the live device stream over websockets.
package ws

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"fleettrack/config"
	"fleettrack/internal/delivery"
	"fleettrack/internal/domain/lifecycle"
	"fleettrack/internal/infra/stream"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"nhooyr.io/websocket"
)

const writeTimeout = 10 * time.Second

type WSParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Hub    *stream.Hub
}

type wsServer struct {
	cfg    *config.Config
	logger *slog.Logger
	hub    *stream.Hub
	server *http.Server
}

// NewServer builds the live stream server. Each viewer that connects to
// /live is registered with the hub and receives every device state change
// as a JSON frame.
func NewServer(params WSParams) (delivery.Delivery, error) {
	srv := &wsServer{
		cfg:    params.Config,
		logger: params.Logger,
		hub:    params.Hub,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/live", srv.handleLive)

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *wsServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.WS.Port))
	s.logger.Info("Starting live stream server", slog.String("hostPort", hostPort))

	listener, err := net.Listen("tcp", hostPort)
	if err != nil {
		return errors.Wrap(err, "failed to listen for live stream")
	}

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve live stream")
	}

	return nil
}

func (s *wsServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down live stream server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

func (s *wsServer) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Viewers connect from the map frontends on other origins.
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.logger.Warn("live stream accept failed", slog.Any("error", err))

		return
	}

	sessionID := uuid.NewString()
	session := s.hub.Register(sessionID)
	defer s.hub.Unregister(sessionID)

	ctx := r.Context()

	// Viewers never send meaningful frames. The read loop only notices
	// the close handshake so the write loop can exit.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusGoingAway, "server shutting down")

			return
		case <-readDone:
			conn.Close(websocket.StatusNormalClosure, "")

			return
		case frame, ok := <-session.Frames():
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "")

				return
			}
			if err := s.writeFrame(ctx, conn, frame); err != nil {
				s.logger.Debug("live viewer write failed",
					slog.String("session", sessionID),
					slog.Any("error", err),
				)
				conn.Close(websocket.StatusAbnormalClosure, "write failed")

				return
			}
		}
	}
}

func (s *wsServer) writeFrame(ctx context.Context, conn *websocket.Conn, frame []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return conn.Write(writeCtx, websocket.MessageText, frame)
}
