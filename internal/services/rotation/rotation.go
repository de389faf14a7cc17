// Package rotation applies SRS rotation with wall-kick resolution on top
// of the collision engine.
package rotation

import (
	"github.com/mcoot/tetrisgame-go/internal/model"
	"github.com/mcoot/tetrisgame-go/internal/services/collision"
)

// Rotate attempts to rotate the piece in the given direction. On success
// it returns the rotated piece and true. On failure (O piece, or every
// wall kick exhausted) it returns the zero Piece and false; the caller
// must keep its piece exactly as it was.
func Rotate(board *model.Board, piece model.Piece, dir model.RotationDir) (model.Piece, bool) {
	// The O piece has no rotation states
	if piece.Type == model.PieceO {
		return model.Piece{}, false
	}

	newRotation := (piece.Rotation + 1) % 4
	if dir == model.CounterClockwise {
		newRotation = (piece.Rotation + 3) % 4
	}

	candidate := piece
	candidate.Rotation = newRotation

	// Zero offset first
	if !collision.Collides(board, candidate) {
		return candidate, true
	}

	// Then the kick offsets for this exact transition, in table order
	kicks := model.WallKicks(piece.Type)[model.KickKey(piece.Rotation, newRotation)]
	for _, kick := range kicks {
		kicked := candidate
		kicked.X += kick.DX
		kicked.Y += kick.DY
		if !collision.Collides(board, kicked) {
			return kicked, true
		}
	}

	return model.Piece{}, false
}
