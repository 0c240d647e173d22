package request

// GeneratePuzzleRequest is the request body for generating a puzzle
type GeneratePuzzleRequest struct {
	Difficulty string `json:"difficulty"`
}

// SolvePuzzleRequest is the request body for solving a grid; zero
// means an empty cell
type SolvePuzzleRequest struct {
	Cells [][]int `json:"cells"`
}

// ScheduleWordRequest is the request body for scheduling a daily word
type ScheduleWordRequest struct {
	Kind     string `json:"kind"`
	Word     string `json:"word"`
	Hint     string `json:"hint,omitempty"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date"`
}

// GrantTicketsRequest is the request body for crediting replay tickets
type GrantTicketsRequest struct {
	Count int `json:"count"`
}
