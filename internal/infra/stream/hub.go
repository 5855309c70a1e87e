// Package stream fans device state changes out to connected live viewers.
package stream

import (
	"encoding/json"
	"log/slog"
	"sync"

	"fleettrack/internal/domain/entity"
	"fleettrack/internal/domain/service"
)

const sessionBufferSize = 16

// Session is one connected live viewer. Frames are handed over through a
// buffered channel so a stalled socket never blocks the update path.
type Session struct {
	id      string
	frames  chan []byte
	pushed  int
	skipped int
}

// Frames returns the channel the transport drains to write frames out.
func (s *Session) Frames() <-chan []byte {
	return s.frames
}

// push enqueues a frame without blocking. A viewer that cannot keep up
// loses frames rather than stalling everyone else.
func (s *Session) push(frame []byte) bool {
	select {
	case s.frames <- frame:
		s.pushed++
		return true
	default:
		s.skipped++
		return false
	}
}

// Hub tracks live viewer sessions and broadcasts device state frames to
// all of them. It implements service.Broadcaster.
type Hub struct {
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

var _ service.Broadcaster = (*Hub)(nil)

// Register adds a viewer session under the given id and returns it.
func (h *Hub) Register(id string) *Session {
	session := &Session{
		id:     id,
		frames: make(chan []byte, sessionBufferSize),
	}

	h.mu.Lock()
	h.sessions[id] = session
	count := len(h.sessions)
	h.mu.Unlock()

	h.logger.Info("live viewer connected", slog.String("session", id), slog.Int("viewers", count))

	return session
}

// Unregister removes a session and closes its frame channel. Removing an
// unknown id is a no-op.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	session, ok := h.sessions[id]
	if ok {
		delete(h.sessions, id)
	}
	count := len(h.sessions)
	h.mu.Unlock()

	if !ok {
		return
	}

	close(session.frames)
	h.logger.Info("live viewer disconnected",
		slog.String("session", id),
		slog.Int("viewers", count),
		slog.Int("pushed", session.pushed),
		slog.Int("skipped", session.skipped),
	)
}

// BroadcastState serializes the device state once and pushes the frame to
// every connected session.
func (h *Hub) BroadcastState(state *entity.DeviceState) {
	frame, err := json.Marshal(state)
	if err != nil {
		h.logger.Error("failed to serialize device state", slog.Any("error", err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, session := range h.sessions {
		if !session.push(frame) {
			h.logger.Warn("live viewer lagging, frame dropped",
				slog.String("session", session.id),
				slog.Int("skipped", session.skipped),
			)
		}
	}
}
