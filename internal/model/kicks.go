package model

import "fmt"

// KickOffset is one wall-kick candidate: the positional offset to try when
// a rotation collides in place. Y grows downward.
type KickOffset struct {
	DX int
	DY int
}

// KickTable maps a rotation transition ("from->to") to the ordered list of
// offsets to try. The zero offset is not listed; it is always tried first.
type KickTable map[string][]KickOffset

// KickKey builds the lookup key for a rotation transition
func KickKey(from, to int) string {
	return fmt.Sprintf("%d->%d", from, to)
}

// standardKicks is the SRS table shared by the J, L, S, T and Z pieces
var standardKicks = KickTable{
	"0->1": {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	"1->0": {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
	"1->2": {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
	"2->1": {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	"2->3": {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	"3->2": {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	"3->0": {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	"0->3": {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

// iKicks is the SRS table for the I piece, whose 4-wide bounding box needs
// wider offsets
var iKicks = KickTable{
	"0->1": {{-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	"1->0": {{2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	"1->2": {{-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	"2->1": {{1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	"2->3": {{2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	"3->2": {{-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	"3->0": {{1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	"0->3": {{-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

// oKicks is empty: the O piece has no rotation states, so no transition
// ever succeeds
var oKicks = KickTable{}

// WallKicks returns the kick table for the given piece type
func WallKicks(t PieceType) KickTable {
	switch t {
	case PieceI:
		return iKicks
	case PieceO:
		return oKicks
	default:
		return standardKicks
	}
}
