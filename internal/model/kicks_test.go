package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type KicksSuite struct {
	suite.Suite
}

func TestKicksSuite(t *testing.T) {
	suite.Run(t, new(KicksSuite))
}

// allTransitions enumerates the eight adjacent rotation transitions
func (s *KicksSuite) allTransitions() [][2]int {
	return [][2]int{
		{0, 1}, {1, 0},
		{1, 2}, {2, 1},
		{2, 3}, {3, 2},
		{3, 0}, {0, 3},
	}
}

func (s *KicksSuite) TestStandardTableCoversAllTransitions() {
	table := WallKicks(PieceT)
	for _, tr := range s.allTransitions() {
		key := KickKey(tr[0], tr[1])
		s.Len(table[key], 4, "transition %s", key)
	}
}

func (s *KicksSuite) TestITableCoversAllTransitions() {
	table := WallKicks(PieceI)
	for _, tr := range s.allTransitions() {
		key := KickKey(tr[0], tr[1])
		s.Len(table[key], 4, "transition %s", key)
	}
}

func (s *KicksSuite) TestOTableIsEmpty() {
	s.Empty(WallKicks(PieceO))
}

func (s *KicksSuite) TestJLSTZShareTheStandardTable() {
	for _, t := range []PieceType{PieceJ, PieceL, PieceS, PieceT, PieceZ} {
		s.Equal(standardKicks, WallKicks(t))
	}
}

func (s *KicksSuite) TestTablesNeverContainTheZeroOffset() {
	for _, table := range []KickTable{standardKicks, iKicks} {
		for key, offsets := range table {
			for _, offset := range offsets {
				s.NotEqual(KickOffset{}, offset, "transition %s", key)
			}
		}
	}
}

func (s *KicksSuite) TestKickKeyFormat() {
	s.Equal("0->1", KickKey(0, 1))
	s.Equal("3->0", KickKey(3, 0))
}
