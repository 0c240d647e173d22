package response

import (
	"time"

	"github.com/sorteoplay/minigames-go/internal/model"
)

// Puzzle represents a generated number grid in API responses. The
// solution is deliberately not exposed.
type Puzzle struct {
	Difficulty string   `json:"difficulty"`
	Cells      [][]int  `json:"cells"`
	Originals  [][2]int `json:"originals"`
	EmptyCount int      `json:"empty_count"`
}

// PuzzleFromModel converts a model.Grid to a response Puzzle
func PuzzleFromModel(g *model.Grid, difficulty model.Difficulty) Puzzle {
	cells := make([][]int, model.GridSize)
	var originals [][2]int
	for row := 0; row < model.GridSize; row++ {
		cells[row] = make([]int, model.GridSize)
		for col := 0; col < model.GridSize; col++ {
			cells[row][col] = g.Cells[row][col].Value
			if g.Cells[row][col].IsOriginal {
				originals = append(originals, [2]int{row, col})
			}
		}
	}
	return Puzzle{
		Difficulty: string(difficulty),
		Cells:      cells,
		Originals:  originals,
		EmptyCount: g.EmptyCount(),
	}
}

// Solution represents a solved grid
type Solution struct {
	Cells [][]int `json:"cells"`
}

// SolutionFromDigits converts a value matrix to a response Solution
func SolutionFromDigits(d model.Digits) Solution {
	cells := make([][]int, model.GridSize)
	for row := 0; row < model.GridSize; row++ {
		cells[row] = make([]int, model.GridSize)
		copy(cells[row], d[row][:])
	}
	return Solution{Cells: cells}
}

// Profile represents a user's balances in API responses
type Profile struct {
	UserID           string `json:"user_id"`
	Points           int    `json:"points"`
	TicketsAvailable int    `json:"tickets_available"`
	TicketsUsed      int    `json:"tickets_used"`
}

// ProfileFromModel converts a model.Profile to a response Profile
func ProfileFromModel(p *model.Profile) Profile {
	return Profile{
		UserID:           string(p.UserID),
		Points:           p.Points,
		TicketsAvailable: p.TicketsAvailable,
		TicketsUsed:      p.TicketsUsed,
	}
}

// GameResult represents a recorded outcome in API responses
type GameResult struct {
	ID                string    `json:"id"`
	Kind              string    `json:"kind"`
	Score             int       `json:"score"`
	Won               bool      `json:"won"`
	TimeSeconds       int       `json:"time_seconds"`
	AttemptsUsed      int       `json:"attempts_used,omitempty"`
	HintUsed          bool      `json:"hint_used,omitempty"`
	HintsUsed         int       `json:"hints_used,omitempty"`
	Errors            int       `json:"errors,omitempty"`
	SkipsUsed         int       `json:"skips_used,omitempty"`
	QuestionsAnswered int       `json:"questions_answered,omitempty"`
	Day               string    `json:"day"`
	PlayedAt          time.Time `json:"played_at"`
}

// GameResultFromModel converts a model.GameResult to a response GameResult
func GameResultFromModel(r *model.GameResult) GameResult {
	return GameResult{
		ID:                string(r.ID),
		Kind:              string(r.Kind),
		Score:             r.Score,
		Won:               r.Won,
		TimeSeconds:       r.TimeSeconds,
		AttemptsUsed:      r.AttemptsUsed,
		HintUsed:          r.HintUsed,
		HintsUsed:         r.HintsUsed,
		Errors:            r.Errors,
		SkipsUsed:         r.SkipsUsed,
		QuestionsAnswered: r.QuestionsAnswered,
		Day:               r.Day,
		PlayedAt:          r.PlayedAt,
	}
}

// DailyWord represents a scheduled word. Responses carry the word
// itself since this API is a backend-to-backend surface.
type DailyWord struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Word       string `json:"word"`
	Hint       string `json:"hint,omitempty"`
	Category   string `json:"category,omitempty"`
	Date       string `json:"date"`
	Difficulty string `json:"difficulty"`
}

// DailyWordFromModel converts a model.DailyWord to a response DailyWord
func DailyWordFromModel(w *model.DailyWord) DailyWord {
	return DailyWord{
		ID:         w.ID,
		Kind:       string(w.Kind),
		Word:       w.Word,
		Hint:       w.Hint,
		Category:   w.Category,
		Date:       w.Date,
		Difficulty: w.Difficulty,
	}
}
