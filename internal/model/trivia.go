package model

import "time"

// Tier is the difficulty bucket derived from the question ordinal
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
	TierExpert Tier = "expert"
)

// TierFor maps a 1-based question ordinal to its difficulty tier
func TierFor(ordinal int) Tier {
	switch {
	case ordinal <= 3:
		return TierEasy
	case ordinal <= 7:
		return TierMedium
	case ordinal <= 10:
		return TierHard
	default:
		return TierExpert
	}
}

// PointsFor maps a 1-based question ordinal to the points awarded for a
// correct answer
func PointsFor(ordinal int) int {
	switch {
	case ordinal <= 3:
		return 10
	case ordinal <= 7:
		return 20
	case ordinal <= 10:
		return 30
	default:
		return 50
	}
}

// Question is a trivia question prepared for play, options pre-shuffled
type Question struct {
	Text          string
	Options       []string
	CorrectAnswer string
	Category      string
	Tier          Tier
}

// TriviaGame is a trivia play session
type TriviaGame struct {
	ID     GameID
	UserID UserID

	Current *Question
	// Ordinal is the 1-based number of the current question; it drives
	// the tier and point value and does not advance on skips
	Ordinal int

	Score     int
	SkipsUsed int
	Answered  int

	// ServedTexts records question texts already shown this session so
	// the source can avoid immediate repeats
	ServedTexts []string

	Status GameStatus

	StartedAt time.Time
	EndedAt   time.Time
}

// HighestTier returns the tier of the furthest question reached
func (g *TriviaGame) HighestTier() Tier {
	if g.Ordinal < 1 {
		return TierEasy
	}
	return TierFor(g.Ordinal)
}
