package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sorteoplay/minigames-go/internal/api/apierr"
	"github.com/sorteoplay/minigames-go/internal/api/request"
	"github.com/sorteoplay/minigames-go/internal/api/response"
	"github.com/sorteoplay/minigames-go/internal/model"
	"github.com/sorteoplay/minigames-go/internal/services/grid"
)

// PuzzleHandler handles number grid generation and solving endpoints
type PuzzleHandler struct {
	gridService *grid.Service
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(gridService *grid.Service) *PuzzleHandler {
	return &PuzzleHandler{
		gridService: gridService,
	}
}

// Generate handles POST /api/v1/puzzles
func (h *PuzzleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.GeneratePuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	difficulty := model.Difficulty(req.Difficulty)
	switch difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	case "":
		difficulty = model.DifficultyMedium
	default:
		WriteError(w, apierr.NewInvalidDifficultyError())
		return
	}

	puzzle := h.gridService.GeneratePuzzle(difficulty)
	response.JSON(w, http.StatusCreated, response.PuzzleFromModel(puzzle, difficulty))
}

// Solve handles POST /api/v1/puzzles/solve
func (h *PuzzleHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req request.SolvePuzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	digits, err := digitsFromRequest(req.Cells)
	if err != nil {
		WriteError(w, err)
		return
	}

	solved, ok := h.gridService.Solve(digits)
	if !ok {
		WriteError(w, apierr.NewUnsolvableError())
		return
	}

	response.JSON(w, http.StatusOK, response.SolutionFromDigits(solved))
}

// digitsFromRequest validates a 9x9 matrix of digits 0-9
func digitsFromRequest(cells [][]int) (model.Digits, error) {
	var d model.Digits
	if len(cells) != model.GridSize {
		return d, NewInvalidRequestError("cells must be a 9x9 matrix")
	}
	for row, vals := range cells {
		if len(vals) != model.GridSize {
			return d, NewInvalidRequestError("cells must be a 9x9 matrix")
		}
		for col, v := range vals {
			if v < 0 || v > model.GridSize {
				return d, NewInvalidRequestError("cell values must be 0-9")
			}
			d[row][col] = v
		}
	}
	return d, nil
}
