// Package scoring holds the line-clear operations and the exact scoring,
// level and speed formulas. Everything here is a pure function.
package scoring

import (
	"time"

	"github.com/mcoot/tetrisgame-go/internal/model"
)

// lineClearBase is the score for clearing n lines at level 1
var lineClearBase = map[int]int{
	1: 100,
	2: 300,
	3: 500,
	4: 800,
}

// FullRows returns the indices of rows where every cell is occupied,
// in ascending row order.
func FullRows(board *model.Board) []int {
	var rows []int
	for row := 0; row < model.BoardHeight; row++ {
		if board.RowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearRows returns a new board with the given rows removed and the same
// number of empty rows prepended at the top, so the board keeps exactly
// BoardHeight rows. The input board is not mutated.
func ClearRows(board *model.Board, rows []int) *model.Board {
	if len(rows) == 0 {
		return board.Clone()
	}

	clearing := make(map[int]bool, len(rows))
	for _, row := range rows {
		clearing[row] = true
	}

	result := model.NewBoard()
	dst := model.BoardHeight - 1
	for src := model.BoardHeight - 1; src >= 0; src-- {
		if clearing[src] {
			continue
		}
		copy(result.Cells[dst], board.Cells[src])
		dst--
	}
	return result
}

// LineClearScore returns the score for clearing n lines at once at the
// given level: base {1:100, 2:300, 3:500, 4:800} times level, 0 for any
// other n.
func LineClearScore(n, level int) int {
	return lineClearBase[n] * level
}

// HardDropScore returns the score for a hard drop: 2 points per row
// dropped.
func HardDropScore(rowsDropped int) int {
	return rowsDropped * 2
}

// LevelForLines returns the level for a total line count: 1 + lines/10.
func LevelForLines(linesCleared int) int {
	return 1 + linesCleared/10
}

// DropSpeedForLevel returns the automatic descent interval for a level:
// 1000ms at level 1, 100ms faster per level, floored at 100ms.
func DropSpeedForLevel(level int) time.Duration {
	ms := 1000 - (level-1)*100
	if ms < 100 {
		ms = 100
	}
	return time.Duration(ms) * time.Millisecond
}
