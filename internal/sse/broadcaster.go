package sse

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/mcoot/tetrisgame-go/internal/model"
	"github.com/mcoot/tetrisgame-go/internal/services/game"
)

// Event names sent over the SSE stream
const (
	EventState = "state"
)

// Broadcaster bridges engine notifications onto SSE hubs: it subscribes
// to a session's snapshot stream once and fans each snapshot out to every
// client watching that session.
type Broadcaster struct {
	hubManager *HubManager
	controller *game.Controller
	logger     *slog.Logger

	mu       sync.Mutex
	attached map[model.SessionID]func()
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, controller *game.Controller, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		controller: controller,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
		attached:   make(map[model.SessionID]func()),
	}
}

// Attach ensures the session's snapshot stream feeds its hub. Safe to
// call for every incoming SSE connection; only the first attaches.
func (b *Broadcaster) Attach(sessionID model.SessionID) (*Hub, error) {
	hub := b.hubManager.GetOrCreateHub(sessionID)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.attached[sessionID]; ok {
		return hub, nil
	}

	unsubscribe, err := b.controller.Subscribe(sessionID, func(snapshot model.Snapshot) {
		data, err := json.Marshal(snapshot)
		if err != nil {
			b.logger.Error("failed to marshal snapshot",
				slog.String("session_id", string(sessionID)),
				slog.String("error", err.Error()))
			return
		}
		hub.BroadcastEvent(EventState, string(data))
	})
	if err != nil {
		return nil, err
	}

	b.attached[sessionID] = unsubscribe
	return hub, nil
}

// Detach unsubscribes from the session and closes its hub
func (b *Broadcaster) Detach(sessionID model.SessionID) {
	b.mu.Lock()
	unsubscribe, ok := b.attached[sessionID]
	if ok {
		delete(b.attached, sessionID)
	}
	b.mu.Unlock()

	if ok {
		unsubscribe()
	}
	b.hubManager.RemoveHub(sessionID)
}
