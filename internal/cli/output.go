package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
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

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Puzzle:
		o.printPuzzle(v)
	case Solution:
		o.printGrid(v.Cells)
	case DailyWord:
		o.printDailyWord(v)
	case Profile:
		o.printProfile(v)
	case GameResult:
		o.printGameResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Puzzle response type (matches API)
type Puzzle struct {
	Difficulty string  `json:"difficulty"`
	Cells      [][]int `json:"cells"`
	EmptyCount int     `json:"empty_count"`
}

// Solution response type
type Solution struct {
	Cells [][]int `json:"cells"`
}

// DailyWord response type
type DailyWord struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Word       string `json:"word"`
	Hint       string `json:"hint,omitempty"`
	Category   string `json:"category,omitempty"`
	Date       string `json:"date"`
	Difficulty string `json:"difficulty"`
}

// Profile response type
type Profile struct {
	UserID           string `json:"user_id"`
	Points           int    `json:"points"`
	TicketsAvailable int    `json:"tickets_available"`
	TicketsUsed      int    `json:"tickets_used"`
}

// GameResult response type
type GameResult struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Score       int       `json:"score"`
	Won         bool      `json:"won"`
	TimeSeconds int       `json:"time_seconds"`
	Day         string    `json:"day"`
	PlayedAt    time.Time `json:"played_at"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPuzzle(p Puzzle) {
	fmt.Printf("Difficulty: %s\n", p.Difficulty)
	fmt.Printf("Empty cells: %d\n", p.EmptyCount)
	o.printGrid(p.Cells)
}

func (o *Output) printGrid(cells [][]int) {
	for row, vals := range cells {
		if row > 0 && row%3 == 0 {
			fmt.Println("------+-------+------")
		}
		for col, v := range vals {
			if col > 0 && col%3 == 0 {
				fmt.Print("| ")
			}
			if v == 0 {
				fmt.Print(". ")
			} else {
				fmt.Printf("%d ", v)
			}
		}
		fmt.Println()
	}
}

func (o *Output) printDailyWord(w DailyWord) {
	fmt.Printf("Word: %s (%s)\n", w.Word, w.Kind)
	fmt.Printf("Date: %s\n", w.Date)
	if w.Hint != "" {
		fmt.Printf("Hint: %s\n", w.Hint)
	}
	if w.Category != "" {
		fmt.Printf("Category: %s\n", w.Category)
	}
	fmt.Printf("Difficulty: %s\n", w.Difficulty)
}

func (o *Output) printProfile(p Profile) {
	fmt.Printf("User: %s\n", p.UserID)
	fmt.Printf("Points: %d\n", p.Points)
	fmt.Printf("Tickets: %d available, %d used\n", p.TicketsAvailable, p.TicketsUsed)
}

func (o *Output) printGameResult(r GameResult) {
	wonStr := "lost"
	if r.Won {
		wonStr = "won"
	}
	fmt.Printf("Result: %s (%s)\n", r.ID, r.Kind)
	fmt.Printf("Outcome: %s, %d points\n", wonStr, r.Score)
	fmt.Printf("Time: %ds\n", r.TimeSeconds)
	fmt.Printf("Day: %s\n", r.Day)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
