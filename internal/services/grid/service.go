package grid

import (
	"github.com/sorteoplay/minigames-go/internal/dependencies/random"
	"github.com/sorteoplay/minigames-go/internal/model"
)

// cellsClearedByDifficulty maps difficulty to the clearance count out of
// the 81 cells of a complete grid
var cellsClearedByDifficulty = map[model.Difficulty]int{
	model.DifficultyEasy:   40,
	model.DifficultyMedium: 50,
	model.DifficultyHard:   60,
}

// Service generates, validates and solves 9x9 number-placement grids
type Service struct {
	random random.Random
}

// New creates a new grid Service
func New(rnd random.Random) *Service {
	return &Service{
		random: rnd,
	}
}

// GenerateComplete produces a fully filled grid satisfying row, column and
// box uniqueness, filling cells in row-major order with digits tried in
// shuffled order
func (s *Service) GenerateComplete() model.Digits {
	var d model.Digits
	// A solvable grid always exists from an empty start, so this cannot fail
	s.fill(&d)
	return d
}

// fill recursively completes the grid from the first empty cell, trying
// digits in random order and undoing on dead ends
func (s *Service) fill(d *model.Digits) bool {
	row, col, ok := firstEmpty(d)
	if !ok {
		return true
	}

	digits := random.Shuffle(s.random, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	for _, num := range digits {
		if s.IsValidPlacement(*d, row, col, num) {
			d[row][col] = num
			if s.fill(d) {
				return true
			}
			d[row][col] = 0
		}
	}
	return false
}

// RemoveCells clears exactly count distinct cells from a solved grid,
// picking still-filled cells uniformly at random
func (s *Service) RemoveCells(solved model.Digits, count int) model.Digits {
	puzzle := solved
	removed := 0

	for removed < count {
		row := s.random.Intn(model.GridSize)
		col := s.random.Intn(model.GridSize)
		if puzzle[row][col] != 0 {
			puzzle[row][col] = 0
			removed++
		}
	}

	return puzzle
}

// GeneratePuzzle composes generation and cell removal for the given
// difficulty and wraps the result into a cell grid with its solution.
// The puzzle is not checked for unique solvability; use CountSolutions
// if a caller needs that guarantee.
func (s *Service) GeneratePuzzle(difficulty model.Difficulty) *model.Grid {
	solution := s.GenerateComplete()

	count, ok := cellsClearedByDifficulty[difficulty]
	if !ok {
		count = cellsClearedByDifficulty[model.DifficultyMedium]
	}
	puzzle := s.RemoveCells(solution, count)

	grid := &model.Grid{Solution: solution}
	for row := 0; row < model.GridSize; row++ {
		for col := 0; col < model.GridSize; col++ {
			grid.Cells[row][col] = model.Cell{
				Value:      puzzle[row][col],
				IsOriginal: puzzle[row][col] != 0,
				IsValid:    true,
			}
		}
	}
	return grid
}

// IsValidPlacement reports whether num can occupy (row, col) without
// duplicating a digit in the same row, column or box. The target cell
// itself is excluded from the scan so an already-placed value can be
// re-validated in place.
func (s *Service) IsValidPlacement(d model.Digits, row, col, num int) bool {
	for x := 0; x < model.GridSize; x++ {
		if x != col && d[row][x] == num {
			return false
		}
		if x != row && d[x][col] == num {
			return false
		}
	}

	boxRow := (row / model.BoxSize) * model.BoxSize
	boxCol := (col / model.BoxSize) * model.BoxSize
	for i := 0; i < model.BoxSize; i++ {
		for j := 0; j < model.BoxSize; j++ {
			r, c := boxRow+i, boxCol+j
			if (r != row || c != col) && d[r][c] == num {
				return false
			}
		}
	}

	return true
}

// IsValidGrid reports whether the grid is completely filled with no
// duplicate digit in any row, column or box
func (s *Service) IsValidGrid(d model.Digits) bool {
	for row := 0; row < model.GridSize; row++ {
		for col := 0; col < model.GridSize; col++ {
			if d[row][col] == 0 {
				return false
			}
		}
	}

	for row := 0; row < model.GridSize; row++ {
		var seen [model.GridSize + 1]bool
		for col := 0; col < model.GridSize; col++ {
			num := d[row][col]
			if seen[num] {
				return false
			}
			seen[num] = true
		}
	}

	for col := 0; col < model.GridSize; col++ {
		var seen [model.GridSize + 1]bool
		for row := 0; row < model.GridSize; row++ {
			num := d[row][col]
			if seen[num] {
				return false
			}
			seen[num] = true
		}
	}

	for boxRow := 0; boxRow < model.GridSize; boxRow += model.BoxSize {
		for boxCol := 0; boxCol < model.GridSize; boxCol += model.BoxSize {
			var seen [model.GridSize + 1]bool
			for i := 0; i < model.BoxSize; i++ {
				for j := 0; j < model.BoxSize; j++ {
					num := d[boxRow+i][boxCol+j]
					if seen[num] {
						return false
					}
					seen[num] = true
				}
			}
		}
	}

	return true
}

// IsSolved reports cell-wise equality with the solution, independent of
// rule validity
func (s *Service) IsSolved(d, solution model.Digits) bool {
	return d == solution
}

// Hint identifies a revealable cell: one empty cell chosen uniformly at
// random together with its solution value
type Hint struct {
	Row   int
	Col   int
	Value int
}

// Hint returns a random empty cell and its solution value, or nil when
// the grid has no remaining blanks
func (s *Service) Hint(d, solution model.Digits) *Hint {
	type pos struct{ row, col int }
	var empty []pos

	for row := 0; row < model.GridSize; row++ {
		for col := 0; col < model.GridSize; col++ {
			if d[row][col] == 0 {
				empty = append(empty, pos{row, col})
			}
		}
	}

	if len(empty) == 0 {
		return nil
	}

	p := empty[s.random.Intn(len(empty))]
	return &Hint{
		Row:   p.row,
		Col:   p.col,
		Value: solution[p.row][p.col],
	}
}

// Solve completes a copy of the grid via backtracking with digits tried
// in ascending order, returning false when no completion exists
func (s *Service) Solve(d model.Digits) (model.Digits, bool) {
	solved := d
	if s.solve(&solved) {
		return solved, true
	}
	return model.Digits{}, false
}

func (s *Service) solve(d *model.Digits) bool {
	row, col, ok := firstEmpty(d)
	if !ok {
		return true
	}

	for num := 1; num <= model.GridSize; num++ {
		if s.IsValidPlacement(*d, row, col, num) {
			d[row][col] = num
			if s.solve(d) {
				return true
			}
			d[row][col] = 0
		}
	}
	return false
}

// CountSolutions counts completions of the grid, stopping early once
// limit is reached. Callers that require unique solvability pass limit 2
// and check for a count of exactly 1.
func (s *Service) CountSolutions(d model.Digits, limit int) int {
	grid := d
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if count >= limit {
			return true
		}
		row, col, ok := firstEmpty(&grid)
		if !ok {
			count++
			return count >= limit
		}
		for num := 1; num <= model.GridSize; num++ {
			if s.IsValidPlacement(grid, row, col, num) {
				grid[row][col] = num
				if dfs() {
					return true
				}
				grid[row][col] = 0
			}
		}
		return false
	}
	_ = dfs()

	return count
}

// firstEmpty finds the first empty cell in row-major order
func firstEmpty(d *model.Digits) (int, int, bool) {
	for row := 0; row < model.GridSize; row++ {
		for col := 0; col < model.GridSize; col++ {
			if d[row][col] == 0 {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// Interface for dependency injection
type ServiceInterface interface {
	GenerateComplete() model.Digits
	RemoveCells(solved model.Digits, count int) model.Digits
	GeneratePuzzle(difficulty model.Difficulty) *model.Grid
	IsValidPlacement(d model.Digits, row, col, num int) bool
	IsValidGrid(d model.Digits) bool
	IsSolved(d, solution model.Digits) bool
	Hint(d, solution model.Digits) *Hint
	Solve(d model.Digits) (model.Digits, bool)
	CountSolutions(d model.Digits, limit int) int
}

var _ ServiceInterface = (*Service)(nil)
