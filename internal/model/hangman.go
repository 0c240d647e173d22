package model

import "time"

// HangmanMaxAttempts is the fixed number of wrong guesses allowed
const HangmanMaxAttempts = 6

// HangmanGame is a hangman play session
type HangmanGame struct {
	ID     GameID
	UserID UserID

	// Secret is the target word, uppercase
	Secret      string
	DailyWordID string
	Hint        string
	Category    string

	// Revealed holds one entry per secret position; empty string means
	// the position is still hidden
	Revealed []string

	// Guessed letters in the order they were tried; a letter appears in
	// exactly one of the two lists
	CorrectLetters   []string
	IncorrectLetters []string

	MaxAttempts       int
	RemainingAttempts int

	HintUsed bool
	Status   GameStatus
	Score    int

	StartedAt time.Time
	EndedAt   time.Time
}

// Pattern renders the revealed word with underscores for hidden letters
func (g *HangmanGame) Pattern() string {
	out := make([]byte, 0, len(g.Revealed)*2)
	for _, r := range g.Revealed {
		if r == "" {
			out = append(out, '_')
		} else {
			out = append(out, r...)
		}
	}
	return string(out)
}

// FullyRevealed reports whether every position has been uncovered
func (g *HangmanGame) FullyRevealed() bool {
	for _, r := range g.Revealed {
		if r == "" {
			return false
		}
	}
	return true
}

// AlreadyGuessed reports whether the letter was tried before, in either list
func (g *HangmanGame) AlreadyGuessed(letter string) bool {
	for _, l := range g.CorrectLetters {
		if l == letter {
			return true
		}
	}
	for _, l := range g.IncorrectLetters {
		if l == letter {
			return true
		}
	}
	return false
}
