package response

import (
	"github.com/mcoot/tetrisgame-go/internal/model"
	"github.com/mcoot/tetrisgame-go/internal/services/collision"
)

// GameState represents a session's state in API responses. GhostRow is
// the landing row of the current piece, computed server-side with the
// same pure function a renderer would use for a landing preview; it is -1
// when there is no active piece.
type GameState struct {
	SessionID       string           `json:"session_id"`
	Board           [][]string       `json:"board"`
	CurrentPiece    *model.Piece     `json:"current_piece,omitempty"`
	NextPiece       model.NextPiece  `json:"next_piece"`
	GhostRow        int              `json:"ghost_row"`
	Score           int              `json:"score"`
	Level           int              `json:"level"`
	LinesCleared    int              `json:"lines_cleared"`
	Status          model.GameStatus `json:"status"`
	DropSpeedMillis int64            `json:"drop_speed_ms"`
}

// GameStateFromSnapshot converts an engine snapshot to a response
func GameStateFromSnapshot(id model.SessionID, snapshot model.Snapshot) GameState {
	ghostRow := -1
	if snapshot.CurrentPiece != nil {
		board := &model.Board{Cells: snapshot.Board}
		ghostRow = collision.GhostRow(board, *snapshot.CurrentPiece)
	}

	return GameState{
		SessionID:       string(id),
		Board:           snapshot.Board,
		CurrentPiece:    snapshot.CurrentPiece,
		NextPiece:       snapshot.NextPiece,
		GhostRow:        ghostRow,
		Score:           snapshot.Score,
		Level:           snapshot.Level,
		LinesCleared:    snapshot.LinesCleared,
		Status:          snapshot.Status,
		DropSpeedMillis: snapshot.DropSpeedMillis,
	}
}

// InputResult is the response for an input intent. Applied is false when
// the intent was a guarded no-op (blocked move, exhausted wall kicks,
// wrong game status); the state is current either way.
type InputResult struct {
	Applied bool      `json:"applied"`
	State   GameState `json:"state"`
}
