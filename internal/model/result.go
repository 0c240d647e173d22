package model

import "time"

// UserID identifies a platform user
type UserID string

// GameID identifies a single play session
type GameID string

// GameKind identifies which mini-game a session or result belongs to
type GameKind string

const (
	GameKindNumberGrid GameKind = "numbergrid"
	GameKindWordGuess  GameKind = "wordguess"
	GameKindHangman    GameKind = "hangman"
	GameKindTrivia     GameKind = "trivia"
)

// GameStatus is the lifecycle state of a play session
type GameStatus string

const (
	StatusNotStarted GameStatus = "not_started"
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusLost       GameStatus = "lost"
	StatusGameOver   GameStatus = "game_over"
)

// Terminal reports whether the session can accept no further moves
func (s GameStatus) Terminal() bool {
	switch s {
	case StatusWon, StatusLost, StatusGameOver:
		return true
	}
	return false
}

// GameResult is the recorded outcome of a finished session. Only the
// fields relevant to the session's game kind are populated.
type GameResult struct {
	ID        GameID   `json:"id"`
	UserID    UserID   `json:"user_id"`
	Kind      GameKind `json:"kind"`
	Score     int      `json:"score"`
	Won       bool     `json:"won"`
	Completed bool     `json:"completed"`

	TimeSeconds  int  `json:"time_seconds"`
	AttemptsUsed int  `json:"attempts_used,omitempty"`
	HintUsed     bool `json:"hint_used,omitempty"`
	HintsUsed    int  `json:"hints_used,omitempty"`
	Errors       int  `json:"errors,omitempty"`

	SkipsUsed         int `json:"skips_used,omitempty"`
	QuestionsAnswered int `json:"questions_answered,omitempty"`

	// Day is the calendar date the session finished, used for the
	// one-free-game-per-day check
	Day      string    `json:"day"`
	PlayedAt time.Time `json:"played_at"`
}

// Profile holds a user's point balance and replay tickets
type Profile struct {
	UserID           UserID    `json:"user_id"`
	Points           int       `json:"points"`
	TicketsAvailable int       `json:"tickets_available"`
	TicketsUsed      int       `json:"tickets_used"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DailyWord is the secret word scheduled for one date of one game kind
type DailyWord struct {
	ID         string   `json:"id"`
	Kind       GameKind `json:"kind"`
	Word       string   `json:"word"`
	Hint       string   `json:"hint,omitempty"`
	Category   string   `json:"category,omitempty"`
	Date       string   `json:"date"`
	Difficulty string   `json:"difficulty"`
}

// DayKey formats a time as the calendar-date key used for daily
// eligibility and word scheduling
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
