package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/tetrisgame-go/internal/dependencies/clock"
	"github.com/mcoot/tetrisgame-go/internal/dependencies/random"
	"github.com/mcoot/tetrisgame-go/internal/model"
	"github.com/mcoot/tetrisgame-go/internal/services/spawn"
	"github.com/mcoot/tetrisgame-go/internal/storage"
)

const (
	sessionIDLength   = 12
	sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// tickInterval is the cadence of the driver loop feeding Engine.Tick.
	// It only bounds input-to-drop latency; the drop and lock-delay
	// timers themselves live in the engine.
	tickInterval = 50 * time.Millisecond

	persistTimeout = 2 * time.Second
)

// Controller manages live game sessions: it creates engines, owns the
// per-session serialization lock the engine requires, drives each
// engine's tick loop, and persists a snapshot record on every state
// change.
type Controller struct {
	storage storage.Storage
	spawner *spawn.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[model.SessionID]*liveSession
}

// liveSession pairs an engine with the lock serializing all access to it
type liveSession struct {
	mu        sync.Mutex
	engine    *Engine
	createdAt time.Time
	cancel    context.CancelFunc
}

// NewController creates a new session controller
func NewController(
	storage storage.Storage,
	spawner *spawn.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		spawner:  spawner,
		clock:    clock,
		random:   random,
		logger:   logger.With(slog.String("component", "game")),
		sessions: make(map[model.SessionID]*liveSession),
	}
}

// CreateSession starts a new game session and its tick loop
func (c *Controller) CreateSession(ctx context.Context) (model.SessionID, model.Snapshot, error) {
	id := model.SessionID(c.random.String(sessionIDLength, sessionIDAlphabet))
	now := c.clock.Now()

	engine := NewEngine(c.spawner, c.logger.With(slog.String("session_id", string(id))))

	loopCtx, cancel := context.WithCancel(context.Background())
	live := &liveSession{
		engine:    engine,
		createdAt: now,
		cancel:    cancel,
	}

	engine.Subscribe(func(snapshot model.Snapshot) {
		c.persist(id, live.createdAt, snapshot)
	})
	engine.Reset(now)

	c.mu.Lock()
	c.sessions[id] = live
	c.mu.Unlock()

	go c.runTickLoop(loopCtx, live)

	c.logger.Info("session created", slog.String("session_id", string(id)))

	return id, engine.Snapshot(), nil
}

// runTickLoop drives the engine's timers until the session is deleted
func (c *Controller) runTickLoop(ctx context.Context, live *liveSession) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			live.mu.Lock()
			live.engine.Tick(c.clock.Now())
			live.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

// persist writes the latest snapshot record. Failures are logged, not
// propagated: storage is a convenience view, the live engine is the
// source of truth.
func (c *Controller) persist(id model.SessionID, createdAt time.Time, snapshot model.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	record := &model.SessionRecord{
		ID:        id,
		Snapshot:  snapshot,
		CreatedAt: createdAt,
		UpdatedAt: c.clock.Now(),
	}
	if err := c.storage.SaveSession(ctx, record); err != nil {
		c.logger.Error("failed to persist session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
	}
}

// Apply dispatches an input intent to a session. The returned bool is the
// engine's success value: false means the operation was a guarded no-op
// (blocked move, exhausted kicks, wrong status) and nothing changed.
func (c *Controller) Apply(ctx context.Context, id model.SessionID, intent model.Intent) (model.Snapshot, bool, error) {
	live, err := c.live(id)
	if err != nil {
		return model.Snapshot{}, false, err
	}

	live.mu.Lock()
	defer live.mu.Unlock()

	engine := live.engine
	now := c.clock.Now()

	var applied bool
	switch intent {
	case model.IntentMoveLeft:
		applied = engine.MovePiece(-1, 0)
	case model.IntentMoveRight:
		applied = engine.MovePiece(1, 0)
	case model.IntentSoftDrop:
		applied = engine.MovePiece(0, 1)
	case model.IntentRotateCW:
		applied = engine.RotatePiece(model.Clockwise)
	case model.IntentRotateCCW:
		applied = engine.RotatePiece(model.CounterClockwise)
	case model.IntentHardDrop:
		applied = engine.HardDrop(now)
	case model.IntentPause:
		applied = engine.Pause()
	case model.IntentResume:
		applied = engine.Resume(now)
	case model.IntentRestart:
		engine.Reset(now)
		applied = true
	default:
		return model.Snapshot{}, false, model.ErrInvalidIntent
	}

	return engine.Snapshot(), applied, nil
}

// GetSnapshot returns the current state of a session. Live sessions are
// read from their engine; sessions surviving only in storage (after a
// server restart) are returned from their last persisted record.
func (c *Controller) GetSnapshot(ctx context.Context, id model.SessionID) (model.Snapshot, error) {
	c.mu.RLock()
	live, ok := c.sessions[id]
	c.mu.RUnlock()

	if ok {
		live.mu.Lock()
		defer live.mu.Unlock()
		return live.engine.Snapshot(), nil
	}

	record, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return model.Snapshot{}, err
	}
	return record.Snapshot, nil
}

// Subscribe registers a snapshot callback on a live session. The callback
// runs on the session's own goroutines and must not block. The returned
// function unsubscribes.
func (c *Controller) Subscribe(id model.SessionID, fn func(model.Snapshot)) (func(), error) {
	live, err := c.live(id)
	if err != nil {
		return nil, err
	}

	live.mu.Lock()
	unsubscribe := live.engine.Subscribe(fn)
	live.mu.Unlock()

	return func() {
		live.mu.Lock()
		unsubscribe()
		live.mu.Unlock()
	}, nil
}

// DeleteSession stops a session's tick loop and removes it everywhere
func (c *Controller) DeleteSession(ctx context.Context, id model.SessionID) error {
	c.mu.Lock()
	live, ok := c.sessions[id]
	if ok {
		delete(c.sessions, id)
	}
	c.mu.Unlock()

	if ok {
		live.cancel()
	} else {
		// Not live; still allow cleaning up a persisted record
		if _, err := c.storage.GetSession(ctx, id); err != nil {
			return err
		}
	}

	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	c.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}

// Close stops every live session's tick loop
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, live := range c.sessions {
		live.cancel()
		delete(c.sessions, id)
	}
}

// live looks up a live session
func (c *Controller) live(id model.SessionID) (*liveSession, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	live, ok := c.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return live, nil
}
