package collision

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tetrisgame-go/internal/model"
)

type CollisionSuite struct {
	suite.Suite
}

func TestCollisionSuite(t *testing.T) {
	suite.Run(t, new(CollisionSuite))
}

// boardWithFilledRows returns a board whose bottom n rows are fully locked
func (s *CollisionSuite) boardWithFilledRows(n int) *model.Board {
	board := model.NewBoard()
	for row := model.BoardHeight - n; row < model.BoardHeight; row++ {
		for col := 0; col < model.BoardWidth; col++ {
			board.Set(row, col, "#808080")
		}
	}
	return board
}

func (s *CollisionSuite) TestSpawnPoseOnEmptyBoardIsFree() {
	board := model.NewBoard()
	for _, t := range model.PieceTypes {
		s.False(Collides(board, model.SpawnPiece(t)), "piece %s", t)
	}
}

func (s *CollisionSuite) TestCollidesLeftWall() {
	board := model.NewBoard()
	piece := model.SpawnPiece(model.PieceT)
	piece.X = -2 // T rot 0 occupies cols X..X+2
	s.True(Collides(board, piece))

	piece.X = -1 // leftmost filled cell at col 0, still in bounds
	s.False(Collides(board, piece))
}

func (s *CollisionSuite) TestCollidesRightWall() {
	board := model.NewBoard()
	piece := model.SpawnPiece(model.PieceT)
	piece.X = 7 // occupies cols 7..9
	s.False(Collides(board, piece))

	piece.X = 8
	s.True(Collides(board, piece))
}

func (s *CollisionSuite) TestCollidesFloor() {
	board := model.NewBoard()
	piece := model.SpawnPiece(model.PieceT)
	piece.Y = 18 // bottom filled row at 19
	s.False(Collides(board, piece))

	piece.Y = 19
	s.True(Collides(board, piece))
}

func (s *CollisionSuite) TestCellsAboveTheBoardArePermitted() {
	board := model.NewBoard()
	piece := model.SpawnPiece(model.PieceI)
	piece.Y = -1 // I rot 0 fills its second shape row, at board row 0
	s.False(Collides(board, piece))

	piece.Y = -2 // the filled row is now above the board entirely
	s.False(Collides(board, piece))
}

func (s *CollisionSuite) TestCollidesLockedCells() {
	board := model.NewBoard()
	board.Set(1, 4, "#ff0000")

	piece := model.SpawnPiece(model.PieceT)
	// T rot 0 fills (0,4) and (1,3..5); overlaps the locked cell
	s.True(Collides(board, piece))

	board.Set(1, 4, "")
	s.False(Collides(board, piece))
}

func (s *CollisionSuite) TestGhostRowOnEmptyBoard() {
	// T at spawn fills shape rows 0-1, so its bounding box rests at 18
	board := model.NewBoard()
	piece := model.SpawnPiece(model.PieceT)
	s.Equal(18, GhostRow(board, piece))
}

func (s *CollisionSuite) TestGhostRowAboveLockedRows() {
	board := s.boardWithFilledRows(5)
	piece := model.SpawnPiece(model.PieceT)
	s.Equal(13, GhostRow(board, piece))
}

func (s *CollisionSuite) TestGhostRowForIPiece() {
	// I rot 0 fills only its second shape row
	board := model.NewBoard()
	piece := model.SpawnPiece(model.PieceI)
	s.Equal(18, GhostRow(board, piece))
}

func (s *CollisionSuite) TestGhostRowWhenAlreadyResting() {
	board := model.NewBoard()
	piece := model.SpawnPiece(model.PieceT)
	piece.Y = 18
	s.Equal(18, GhostRow(board, piece))
}
