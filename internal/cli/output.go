package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mcoot/tetrisgame-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameState:
		o.printGameState(v)
	case InputResult:
		o.printInputResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameState response type (matches API)
type GameState struct {
	SessionID       string       `json:"session_id"`
	Board           [][]string   `json:"board"`
	CurrentPiece    *Piece       `json:"current_piece,omitempty"`
	NextPiece       NextPiece    `json:"next_piece"`
	GhostRow        int          `json:"ghost_row"`
	Score           int          `json:"score"`
	Level           int          `json:"level"`
	LinesCleared    int          `json:"lines_cleared"`
	Status          string       `json:"status"`
	DropSpeedMillis int64        `json:"drop_speed_ms"`
}

// Piece response type
type Piece struct {
	Type     string `json:"type"`
	Rotation int    `json:"rotation"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Color    string `json:"color"`
}

// NextPiece response type
type NextPiece struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

// InputResult response type
type InputResult struct {
	Applied bool      `json:"applied"`
	State   GameState `json:"state"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Session: %s\n", g.SessionID)
	fmt.Printf("Status: %s\n", g.Status)
	fmt.Printf("Score: %d\n", g.Score)
	fmt.Printf("Level: %d\n", g.Level)
	fmt.Printf("Lines: %d\n", g.LinesCleared)
	fmt.Printf("Drop Speed: %dms\n", g.DropSpeedMillis)
	fmt.Printf("Next: %s\n", g.NextPiece.Type)

	fmt.Println()
	o.printBoard(g)
}

// printBoard renders the board with the current piece and its ghost row
// overlaid. Locked cells are '#', the active piece is its type letter,
// and the ghost landing position is '.'.
func (o *Output) printBoard(g GameState) {
	rows := len(g.Board)
	if rows == 0 {
		return
	}
	cols := len(g.Board[0])

	// Build a rune grid from the locked cells
	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			if g.Board[y][x] == "" {
				grid[y][x] = ' '
			} else {
				grid[y][x] = '#'
			}
		}
	}

	// Overlay the ghost, then the piece on top of it
	if p := g.CurrentPiece; p != nil {
		shape := model.ShapeOf(model.PieceType(p.Type), p.Rotation)
		if g.GhostRow >= 0 {
			overlayShape(grid, shape, p.X, g.GhostRow, '.')
		}
		letter := rune(p.Type[0])
		overlayShape(grid, shape, p.X, p.Y, letter)
	}

	fmt.Print("+")
	for x := 0; x < cols; x++ {
		fmt.Print("-")
	}
	fmt.Println("+")

	for y := 0; y < rows; y++ {
		fmt.Print("|")
		for x := 0; x < cols; x++ {
			fmt.Printf("%c", grid[y][x])
		}
		fmt.Println("|")
	}

	fmt.Print("+")
	for x := 0; x < cols; x++ {
		fmt.Print("-")
	}
	fmt.Println("+")
}

func overlayShape(grid [][]rune, shape model.Shape, px, py int, mark rune) {
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 4; dx++ {
			if !shape[dy][dx] {
				continue
			}
			y := py + dy
			x := px + dx
			if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
				continue
			}
			grid[y][x] = mark
		}
	}
}

func (o *Output) printInputResult(r InputResult) {
	if !r.Applied {
		fmt.Println("Input not applied")
	}
	o.printGameState(r.State)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
