package model

// PieceType identifies one of the seven tetrominoes
type PieceType string

const (
	PieceI PieceType = "I"
	PieceO PieceType = "O"
	PieceT PieceType = "T"
	PieceS PieceType = "S"
	PieceZ PieceType = "Z"
	PieceJ PieceType = "J"
	PieceL PieceType = "L"
)

// PieceTypes lists all seven types in a fixed order, used by the generator
var PieceTypes = []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

// RotationDir is the direction of a rotation attempt
type RotationDir int

const (
	Clockwise RotationDir = iota
	CounterClockwise
)

// Shape is a 4x4 occupancy matrix for one rotation state.
// Shape[row][col] is true where the piece fills the cell.
type Shape [4][4]bool

// Piece is the active falling piece. (X, Y) is the top-left anchor of its
// 4x4 bounding box; Y may be negative while the piece is partly above the
// visible board.
type Piece struct {
	Type     PieceType `json:"type"`
	Rotation int       `json:"rotation"` // 0..3
	X        int       `json:"x"`
	Y        int       `json:"y"`
	Color    string    `json:"color"`
}

// NextPiece is the one-piece lookahead. It has no pose; the pose is
// computed when it is promoted to the active piece.
type NextPiece struct {
	Type  PieceType `json:"type"`
	Color string    `json:"color"`
}

// sh builds a Shape from four row strings, 'X' marking filled cells
func sh(rows ...string) Shape {
	var s Shape
	for r, row := range rows {
		for c, ch := range row {
			if ch == 'X' {
				s[r][c] = true
			}
		}
	}
	return s
}

// pieceShapes holds the four rotation states per type, indexed
// 0=spawn, 1=clockwise, 2=180, 3=counter-clockwise
var pieceShapes = map[PieceType][4]Shape{
	PieceI: {
		sh("....", "XXXX", "....", "...."),
		sh("..X.", "..X.", "..X.", "..X."),
		sh("....", "....", "XXXX", "...."),
		sh(".X..", ".X..", ".X..", ".X.."),
	},
	PieceO: {
		sh("XX..", "XX..", "....", "...."),
		sh("XX..", "XX..", "....", "...."),
		sh("XX..", "XX..", "....", "...."),
		sh("XX..", "XX..", "....", "...."),
	},
	PieceT: {
		sh(".X..", "XXX.", "....", "...."),
		sh(".X..", ".XX.", ".X..", "...."),
		sh("....", "XXX.", ".X..", "...."),
		sh(".X..", "XX..", ".X..", "...."),
	},
	PieceS: {
		sh(".XX.", "XX..", "....", "...."),
		sh(".X..", ".XX.", "..X.", "...."),
		sh("....", ".XX.", "XX..", "...."),
		sh("X...", "XX..", ".X..", "...."),
	},
	PieceZ: {
		sh("XX..", ".XX.", "....", "...."),
		sh("..X.", ".XX.", ".X..", "...."),
		sh("....", "XX..", ".XX.", "...."),
		sh(".X..", "XX..", "X...", "...."),
	},
	PieceJ: {
		sh("X...", "XXX.", "....", "...."),
		sh(".XX.", ".X..", ".X..", "...."),
		sh("....", "XXX.", "..X.", "...."),
		sh(".X..", ".X..", "XX..", "...."),
	},
	PieceL: {
		sh("..X.", "XXX.", "....", "...."),
		sh(".X..", ".X..", ".XX.", "...."),
		sh("....", "XXX.", "X...", "...."),
		sh("XX..", ".X..", ".X..", "...."),
	},
}

// pieceColors maps each type to its fixed render color
var pieceColors = map[PieceType]string{
	PieceI: "#00f0f0",
	PieceO: "#f0f000",
	PieceT: "#a000f0",
	PieceS: "#00f000",
	PieceZ: "#f00000",
	PieceJ: "#0000f0",
	PieceL: "#f0a000",
}

// ShapeOf returns the occupancy matrix for a type at a rotation state.
// rotation is taken mod 4.
func ShapeOf(t PieceType, rotation int) Shape {
	return pieceShapes[t][((rotation%4)+4)%4]
}

// ColorOf returns the fixed color for a piece type
func ColorOf(t PieceType) string {
	return pieceColors[t]
}

// SpawnPiece returns a piece of the given type at its spawn pose:
// rotation 0, y 0, x 3 (x 4 for the O piece, which centers its 2x2 block)
func SpawnPiece(t PieceType) Piece {
	x := 3
	if t == PieceO {
		x = 4
	}
	return Piece{
		Type:     t,
		Rotation: 0,
		X:        x,
		Y:        0,
		Color:    ColorOf(t),
	}
}
