// Package collision answers whether a piece at a given pose overlaps the
// board or its boundaries. All functions are pure; they never mutate their
// arguments and have no failure modes.
package collision

import (
	"github.com/mcoot/tetrisgame-go/internal/model"
)

// Collides reports whether the piece, at its current pose, overlaps a
// locked cell or leaves the board. Cells above the visible board (boardY
// < 0) are always permitted, which lets pieces spawn and rotate while
// still partly off-screen.
func Collides(board *model.Board, piece model.Piece) bool {
	shape := model.ShapeOf(piece.Type, piece.Rotation)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !shape[row][col] {
				continue
			}
			boardX := piece.X + col
			boardY := piece.Y + row

			if boardX < 0 || boardX >= model.BoardWidth || boardY >= model.BoardHeight {
				return true
			}
			if boardY >= 0 && !board.IsEmpty(boardY, boardX) {
				return true
			}
		}
	}
	return false
}

// GhostRow returns the lowest y at which the piece rests collision-free:
// the landing row for a hard drop and the anchor for a landing preview.
// The board floor guarantees termination.
func GhostRow(board *model.Board, piece model.Piece) int {
	probe := piece
	for {
		probe.Y++
		if Collides(board, probe) {
			return probe.Y - 1
		}
	}
}
