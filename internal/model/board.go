package model

// Board dimensions are fixed for the life of a session
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Board is the grid of locked cells. A cell holds the color of the piece
// that locked there, or "" if empty. The active piece is never written to
// the board until it locks.
type Board struct {
	Cells [][]string `json:"cells"` // Row-major: Cells[row][col]
}

// NewBoard creates an empty standard-size board
func NewBoard() *Board {
	cells := make([][]string, BoardHeight)
	for i := range cells {
		cells[i] = make([]string, BoardWidth)
	}
	return &Board{Cells: cells}
}

// Get returns the color at (row, col), or "" if empty or out of bounds
func (b *Board) Get(row, col int) string {
	if row < 0 || row >= BoardHeight || col < 0 || col >= BoardWidth {
		return ""
	}
	return b.Cells[row][col]
}

// Set writes a color at (row, col). Out-of-bounds writes are dropped.
func (b *Board) Set(row, col int, color string) {
	if row < 0 || row >= BoardHeight || col < 0 || col >= BoardWidth {
		return
	}
	b.Cells[row][col] = color
}

// IsEmpty returns true if the cell at (row, col) holds no locked piece
func (b *Board) IsEmpty(row, col int) bool {
	return b.Get(row, col) == ""
}

// RowFull returns true if every cell in the row is occupied
func (b *Board) RowFull(row int) bool {
	if row < 0 || row >= BoardHeight {
		return false
	}
	for col := 0; col < BoardWidth; col++ {
		if b.Cells[row][col] == "" {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([][]string, len(b.Cells))
	for i, row := range b.Cells {
		cells[i] = make([]string, len(row))
		copy(cells[i], row)
	}
	return &Board{Cells: cells}
}
