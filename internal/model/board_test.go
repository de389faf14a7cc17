package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) TestNewBoardIsEmpty() {
	board := NewBoard()
	s.Len(board.Cells, BoardHeight)
	for row := 0; row < BoardHeight; row++ {
		s.Len(board.Cells[row], BoardWidth)
		for col := 0; col < BoardWidth; col++ {
			s.True(board.IsEmpty(row, col))
		}
	}
}

func (s *BoardSuite) TestSetAndGet() {
	board := NewBoard()
	board.Set(5, 3, "#ff0000")
	s.Equal("#ff0000", board.Get(5, 3))
	s.False(board.IsEmpty(5, 3))
}

func (s *BoardSuite) TestOutOfBoundsWritesAreDropped() {
	board := NewBoard()
	board.Set(-1, 0, "#ff0000")
	board.Set(BoardHeight, 0, "#ff0000")
	board.Set(0, -1, "#ff0000")
	board.Set(0, BoardWidth, "#ff0000")

	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			s.True(board.IsEmpty(row, col))
		}
	}
}

func (s *BoardSuite) TestOutOfBoundsReadsAreEmpty() {
	board := NewBoard()
	s.Equal("", board.Get(-1, 0))
	s.Equal("", board.Get(BoardHeight, 0))
}

func (s *BoardSuite) TestRowFull() {
	board := NewBoard()
	s.False(board.RowFull(19))

	for col := 0; col < BoardWidth; col++ {
		board.Set(19, col, "#ff0000")
	}
	s.True(board.RowFull(19))

	board.Set(19, 4, "")
	s.False(board.RowFull(19))
}

func (s *BoardSuite) TestRowFullOutOfBounds() {
	board := NewBoard()
	s.False(board.RowFull(-1))
	s.False(board.RowFull(BoardHeight))
}

func (s *BoardSuite) TestCloneIsDeep() {
	board := NewBoard()
	board.Set(0, 0, "#ff0000")

	clone := board.Clone()
	clone.Set(0, 0, "#00ff00")
	clone.Set(1, 1, "#0000ff")

	s.Equal("#ff0000", board.Get(0, 0))
	s.True(board.IsEmpty(1, 1))
}

func (s *BoardSuite) TestSnapshotDeepCopiesBoard() {
	session := Session{
		Board:     NewBoard(),
		NextPiece: NextPiece{Type: PieceI, Color: ColorOf(PieceI)},
		Status:    StatusPlaying,
	}
	session.Board.Set(10, 5, "#ff0000")

	snapshot := session.Snapshot()
	snapshot.Board[10][5] = ""

	s.Equal("#ff0000", session.Board.Get(10, 5))
}

func (s *BoardSuite) TestSnapshotCopiesCurrentPiece() {
	piece := SpawnPiece(PieceT)
	session := Session{
		Board:        NewBoard(),
		CurrentPiece: &piece,
		Status:       StatusPlaying,
	}

	snapshot := session.Snapshot()
	snapshot.CurrentPiece.X = 99

	s.Equal(3, session.CurrentPiece.X)
}
