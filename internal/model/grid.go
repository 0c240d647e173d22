package model

import "time"

// Grid dimensions
const (
	GridSize = 9
	BoxSize  = 3
)

// Difficulty selects how many cells are cleared from a complete grid
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Digits is a plain 9x9 value matrix, 0 meaning empty
type Digits [GridSize][GridSize]int

// Cell is a single grid cell as presented to the player
type Cell struct {
	Value int
	// IsOriginal marks cells that are part of the initial clue set and
	// may never be changed
	IsOriginal bool
	// IsValid is the rule-conformance flag computed on the last placement
	IsValid bool
	// Notes holds pencil-mode candidate digits; only meaningful while
	// the cell is empty
	Notes []int
}

// Grid is a puzzle board plus the solution fixed at generation time
type Grid struct {
	Cells    [GridSize][GridSize]Cell
	Solution Digits
}

// Values extracts the current value matrix from the cell grid
func (g *Grid) Values() Digits {
	var d Digits
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			d[row][col] = g.Cells[row][col].Value
		}
	}
	return d
}

// EmptyCount returns the number of empty cells
func (g *Grid) EmptyCount() int {
	count := 0
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g.Cells[row][col].Value == 0 {
				count++
			}
		}
	}
	return count
}

// InBounds reports whether the position is on the grid
func InBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

// Move records a single cell change for undo/redo history
type Move struct {
	Row           int
	Col           int
	PreviousValue int
	NewValue      int
	At            time.Time
}

// GridGame is a number-placement play session
type GridGame struct {
	ID         GameID
	UserID     UserID
	Grid       *Grid
	Difficulty Difficulty

	Errors     int
	HintsUsed  int
	PencilMode bool
	Complete   bool
	Solved     bool
	// Paid marks a ticket-consumed session, refundable on abandon
	Paid bool

	History   []Move
	RedoStack []Move

	StartedAt time.Time
	EndedAt   time.Time
}
