package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// GameStatus represents the current phase of a session
type GameStatus string

const (
	StatusPlaying  GameStatus = "playing"
	StatusPaused   GameStatus = "paused"
	StatusGameOver GameStatus = "game_over"
)

// LockDelay is the grace period after a piece can no longer descend
// before it is committed to the board
const LockDelay = 500 * time.Millisecond

// Session is the full mutable state of one game. It is owned exclusively
// by the game engine; nothing outside the engine mutates it.
type Session struct {
	Board        *Board
	CurrentPiece *Piece // nil only after a blocked spawn ends the game
	NextPiece    NextPiece
	Score        int
	Level        int
	LinesCleared int
	Status       GameStatus
	DropSpeed    time.Duration

	// Timer reference points, stamped with caller-supplied time.
	// A zero LockDelayStart means the lock-delay timer is not running.
	LastDropTime   time.Time
	LockDelayStart time.Time
}

// Snapshot is the immutable view of a session handed to subscribers and
// returned from the API. The board is deep-copied; timer internals are
// not exposed.
type Snapshot struct {
	Board           [][]string `json:"board"`
	CurrentPiece    *Piece     `json:"current_piece"`
	NextPiece       NextPiece  `json:"next_piece"`
	Score           int        `json:"score"`
	Level           int        `json:"level"`
	LinesCleared    int        `json:"lines_cleared"`
	Status          GameStatus `json:"status"`
	DropSpeedMillis int64      `json:"drop_speed_ms"`
}

// Snapshot builds an immutable snapshot of the session
func (s *Session) Snapshot() Snapshot {
	board := s.Board.Clone().Cells

	var current *Piece
	if s.CurrentPiece != nil {
		p := *s.CurrentPiece
		current = &p
	}

	return Snapshot{
		Board:           board,
		CurrentPiece:    current,
		NextPiece:       s.NextPiece,
		Score:           s.Score,
		Level:           s.Level,
		LinesCleared:    s.LinesCleared,
		Status:          s.Status,
		DropSpeedMillis: s.DropSpeed.Milliseconds(),
	}
}

// SessionRecord is the persisted form of a session: its latest snapshot
// plus bookkeeping timestamps. Only the serving layer reads and writes it;
// the engine itself never touches storage.
type SessionRecord struct {
	ID        SessionID `json:"id"`
	Snapshot  Snapshot  `json:"snapshot"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
