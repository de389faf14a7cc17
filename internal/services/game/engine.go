package game

import (
	"log/slog"
	"time"

	"github.com/mcoot/tetrisgame-go/internal/model"
	"github.com/mcoot/tetrisgame-go/internal/services/collision"
	"github.com/mcoot/tetrisgame-go/internal/services/rotation"
	"github.com/mcoot/tetrisgame-go/internal/services/scoring"
	"github.com/mcoot/tetrisgame-go/internal/services/spawn"
)

// Engine owns the mutable state of one game session and is the only code
// that mutates it. It is not safe for concurrent use: callers must
// serialize all operations, e.g. by driving the engine from a single
// loop. Every time-sensitive operation takes a caller-supplied now; the
// engine never reads a clock, which makes play fully deterministic under
// test.
type Engine struct {
	spawner *spawn.Service
	logger  *slog.Logger

	session model.Session

	subscribers map[int]func(model.Snapshot)
	nextSubID   int
}

// NewEngine creates an engine with an empty session. Call Reset to begin
// play.
func NewEngine(spawner *spawn.Service, logger *slog.Logger) *Engine {
	return &Engine{
		spawner:     spawner,
		logger:      logger.With(slog.String("component", "engine")),
		subscribers: make(map[int]func(model.Snapshot)),
	}
}

// Reset (re)initializes the full session: empty board, score 0, level 1,
// freshly drawn current and next pieces, status Playing. It backs both
// game start and the restart intent, and is the only operation valid in
// any status.
func (e *Engine) Reset(now time.Time) {
	current := e.spawner.Promote(e.spawner.Draw())

	e.session = model.Session{
		Board:        model.NewBoard(),
		CurrentPiece: &current,
		NextPiece:    e.spawner.Draw(),
		Score:        0,
		Level:        1,
		LinesCleared: 0,
		Status:       model.StatusPlaying,
		DropSpeed:    scoring.DropSpeedForLevel(1),
		LastDropTime: now,
	}

	e.logger.Info("session reset",
		slog.String("current_piece", string(current.Type)),
		slog.String("next_piece", string(e.session.NextPiece.Type)),
	)

	e.notify()
}

// Snapshot returns an immutable view of the current session state
func (e *Engine) Snapshot() model.Snapshot {
	return e.session.Snapshot()
}

// Status returns the current game status
func (e *Engine) Status() model.GameStatus {
	return e.session.Status
}

// Subscribe registers a callback invoked with a fresh snapshot after
// every observable state change. The returned function unsubscribes; it
// is safe to call it from inside the callback.
func (e *Engine) Subscribe(fn func(model.Snapshot)) func() {
	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = fn
	return func() {
		delete(e.subscribers, id)
	}
}

// notify dispatches a snapshot to every subscriber. The subscriber list
// is copied first so a callback unsubscribing mid-dispatch is safe.
func (e *Engine) notify() {
	if len(e.subscribers) == 0 {
		return
	}
	callbacks := make([]func(model.Snapshot), 0, len(e.subscribers))
	for _, fn := range e.subscribers {
		callbacks = append(callbacks, fn)
	}
	snapshot := e.session.Snapshot()
	for _, fn := range callbacks {
		fn(snapshot)
	}
}

// playing reports whether piece-mutating operations are currently allowed
func (e *Engine) playing() bool {
	return e.session.Status == model.StatusPlaying && e.session.CurrentPiece != nil
}

// MovePiece shifts the active piece by (dx, dy) cells if the target pose
// is collision-free. A successful downward move clears the lock-delay
// timer. Returns false, leaving the piece untouched, on a blocked move or
// outside Playing.
func (e *Engine) MovePiece(dx, dy int) bool {
	if !e.playing() {
		return false
	}

	candidate := *e.session.CurrentPiece
	candidate.X += dx
	candidate.Y += dy
	if collision.Collides(e.session.Board, candidate) {
		return false
	}

	e.session.CurrentPiece = &candidate
	if dy > 0 {
		e.session.LockDelayStart = time.Time{}
	}
	e.notify()
	return true
}

// RotatePiece rotates the active piece using the SRS kick search. On
// failure the piece is left byte-identical to before the attempt.
func (e *Engine) RotatePiece(dir model.RotationDir) bool {
	if !e.playing() {
		return false
	}

	rotated, ok := rotation.Rotate(e.session.Board, *e.session.CurrentPiece, dir)
	if !ok {
		return false
	}

	e.session.CurrentPiece = &rotated
	e.notify()
	return true
}

// HardDrop moves the active piece straight to its landing row, awards two
// points per row dropped, and locks it immediately.
func (e *Engine) HardDrop(now time.Time) bool {
	if !e.playing() {
		return false
	}

	piece := e.session.CurrentPiece
	landing := collision.GhostRow(e.session.Board, *piece)
	e.session.Score += scoring.HardDropScore(landing - piece.Y)
	piece.Y = landing

	e.lockPiece(now)
	e.notify()
	return true
}

// Pause halts time accrual. No-op unless Playing.
func (e *Engine) Pause() bool {
	if e.session.Status != model.StatusPlaying {
		return false
	}
	e.session.Status = model.StatusPaused
	e.notify()
	return true
}

// Resume returns to Playing and resets the drop-timer reference point so
// no catch-up drop fires immediately after unpausing. No-op unless
// Paused.
func (e *Engine) Resume(now time.Time) bool {
	if e.session.Status != model.StatusPaused {
		return false
	}
	e.session.Status = model.StatusPlaying
	e.session.LastDropTime = now
	e.notify()
	return true
}

// Tick advances the two timers against the caller-supplied now. An
// expired lock delay always wins over a due drop. Starting the lock-delay
// timer is not an observable change, so it does not notify.
func (e *Engine) Tick(now time.Time) {
	if !e.playing() {
		return
	}

	s := &e.session

	if !s.LockDelayStart.IsZero() && now.Sub(s.LockDelayStart) >= model.LockDelay {
		e.lockPiece(now)
		e.notify()
		return
	}

	if now.Sub(s.LastDropTime) >= s.DropSpeed {
		candidate := *s.CurrentPiece
		candidate.Y++
		if !collision.Collides(s.Board, candidate) {
			s.CurrentPiece = &candidate
			s.LastDropTime = now
			s.LockDelayStart = time.Time{}
			e.notify()
		} else if s.LockDelayStart.IsZero() {
			s.LockDelayStart = now
		}
	}
}

// lockPiece commits the active piece to the board, clears full lines,
// applies scoring and level progression, resets both timers relative to
// now, and promotes the next piece. Callers notify afterwards.
func (e *Engine) lockPiece(now time.Time) {
	s := &e.session
	piece := s.CurrentPiece

	shape := model.ShapeOf(piece.Type, piece.Rotation)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if shape[row][col] {
				s.Board.Set(piece.Y+row, piece.X+col, piece.Color)
			}
		}
	}

	if full := scoring.FullRows(s.Board); len(full) > 0 {
		s.Board = scoring.ClearRows(s.Board, full)
		s.Score += scoring.LineClearScore(len(full), s.Level)
		s.LinesCleared += len(full)
		s.Level = scoring.LevelForLines(s.LinesCleared)
		s.DropSpeed = scoring.DropSpeedForLevel(s.Level)

		e.logger.Info("lines cleared",
			slog.Int("count", len(full)),
			slog.Int("total_lines", s.LinesCleared),
			slog.Int("level", s.Level),
			slog.Int("score", s.Score),
		)
	}

	s.LastDropTime = now
	s.LockDelayStart = time.Time{}

	e.spawnNext()
}

// spawnNext promotes the lookahead piece to current and draws a new
// lookahead. If the promoted piece would collide at its spawn pose the
// session ends instead: the blocked piece is never placed, the lookahead
// is not consumed, and the status becomes GameOver.
func (e *Engine) spawnNext() bool {
	s := &e.session

	promoted := e.spawner.Promote(s.NextPiece)
	if collision.Collides(s.Board, promoted) {
		s.Status = model.StatusGameOver
		s.CurrentPiece = nil
		e.logger.Info("game over",
			slog.Int("score", s.Score),
			slog.Int("lines", s.LinesCleared),
			slog.Int("level", s.Level),
		)
		return false
	}

	s.CurrentPiece = &promoted
	s.NextPiece = e.spawner.Draw()
	return true
}
