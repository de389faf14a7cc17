package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PieceSuite struct {
	suite.Suite
}

func TestPieceSuite(t *testing.T) {
	suite.Run(t, new(PieceSuite))
}

func (s *PieceSuite) cellCount(shape Shape) int {
	count := 0
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if shape[row][col] {
				count++
			}
		}
	}
	return count
}

func (s *PieceSuite) TestEveryRotationStateHasFourCells() {
	for _, t := range PieceTypes {
		for rotation := 0; rotation < 4; rotation++ {
			s.Equal(4, s.cellCount(ShapeOf(t, rotation)),
				"piece %s rotation %d", t, rotation)
		}
	}
}

func (s *PieceSuite) TestShapeOfWrapsRotation() {
	for _, t := range PieceTypes {
		s.Equal(ShapeOf(t, 0), ShapeOf(t, 4))
		s.Equal(ShapeOf(t, 1), ShapeOf(t, 5))
		s.Equal(ShapeOf(t, 3), ShapeOf(t, -1))
	}
}

func (s *PieceSuite) TestISpawnShapeFillsSecondRow() {
	shape := ShapeOf(PieceI, 0)
	for col := 0; col < 4; col++ {
		s.False(shape[0][col])
		s.True(shape[1][col])
	}
}

func (s *PieceSuite) TestOShapeIdenticalAcrossRotations() {
	for rotation := 1; rotation < 4; rotation++ {
		s.Equal(ShapeOf(PieceO, 0), ShapeOf(PieceO, rotation))
	}
}

func (s *PieceSuite) TestSpawnPiecePose() {
	piece := SpawnPiece(PieceT)
	s.Equal(PieceT, piece.Type)
	s.Equal(0, piece.Rotation)
	s.Equal(3, piece.X)
	s.Equal(0, piece.Y)
	s.Equal(ColorOf(PieceT), piece.Color)
}

func (s *PieceSuite) TestSpawnPieceCentersOPiece() {
	piece := SpawnPiece(PieceO)
	s.Equal(4, piece.X)
	s.Equal(0, piece.Y)
}

func (s *PieceSuite) TestEveryTypeHasADistinctColor() {
	seen := map[string]PieceType{}
	for _, t := range PieceTypes {
		color := ColorOf(t)
		s.NotEmpty(color)
		s.NotContains(seen, color, "color %s reused by %s and %s", color, seen[color], t)
		seen[color] = t
	}
}
