package console

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taneeshamadhu18/video-call-assignment/internal/viewstate"
)

// SimulatedCapture stands in for real capture devices. Kinds listed in
// Unavailable fail to start, the way a denied permission prompt would.
type SimulatedCapture struct {
	Unavailable map[viewstate.MediaKind]bool

	log    *slog.Logger
	mu     sync.Mutex
	active map[viewstate.MediaKind]bool
}

// NewSimulatedCapture creates a capture device with every kind available.
func NewSimulatedCapture(log *slog.Logger) *SimulatedCapture {
	return &SimulatedCapture{
		log:    log.With("adapter", "simulated_capture"),
		active: make(map[viewstate.MediaKind]bool),
	}
}

// Start begins capturing kind.
func (s *SimulatedCapture) Start(ctx context.Context, kind viewstate.MediaKind) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Unavailable[kind] {
		return fmt.Errorf("%s permission denied", kind)
	}
	s.mu.Lock()
	s.active[kind] = true
	s.mu.Unlock()
	s.log.Debug("capture started", slog.String("kind", string(kind)))
	return nil
}

// Stop ends capturing kind. Stopping an idle device is not an error.
func (s *SimulatedCapture) Stop(kind viewstate.MediaKind) error {
	s.mu.Lock()
	delete(s.active, kind)
	s.mu.Unlock()
	s.log.Debug("capture stopped", slog.String("kind", string(kind)))
	return nil
}

// Active reports whether kind is being captured.
func (s *SimulatedCapture) Active(kind viewstate.MediaKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[kind]
}
