package model

import "time"

// Word guess game dimensions
const (
	WordLength  = 5
	MaxAttempts = 6
)

// LetterStatus is the per-letter feedback class for a submitted guess
type LetterStatus string

const (
	LetterEmpty   LetterStatus = "empty"
	LetterAbsent  LetterStatus = "absent"
	LetterPresent LetterStatus = "present"
	LetterExact   LetterStatus = "exact"
)

// rank orders statuses so keyboard feedback only ever upgrades
func (s LetterStatus) rank() int {
	switch s {
	case LetterAbsent:
		return 1
	case LetterPresent:
		return 2
	case LetterExact:
		return 3
	default:
		return 0
	}
}

// Upgrades reports whether s is a strictly better status than other
func (s LetterStatus) Upgrades(other LetterStatus) bool {
	return s.rank() > other.rank()
}

// GuessLetter is one letter slot in an attempt row
type GuessLetter struct {
	Letter string
	Status LetterStatus
}

// GuessRow is one attempt row of the board
type GuessRow struct {
	Letters   []GuessLetter
	Submitted bool
}

// WordGuessGame is a word-guessing play session
type WordGuessGame struct {
	ID     GameID
	UserID UserID

	// Secret is the target word, uppercase
	Secret      string
	DailyWordID string

	MaxAttempts int
	// Attempt is the index of the next unsubmitted row
	Attempt int
	Rows    []GuessRow

	// Keyboard aggregates the best-known status per letter across all
	// submitted rows
	Keyboard map[string]LetterStatus

	Status GameStatus
	Score  int

	StartedAt time.Time
	EndedAt   time.Time
}

// AttemptsRemaining returns how many rows are still open
func (g *WordGuessGame) AttemptsRemaining() int {
	return g.MaxAttempts - g.Attempt
}
