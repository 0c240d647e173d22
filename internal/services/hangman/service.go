package hangman

import (
	"math"
	"strings"

	"github.com/sorteoplay/minigames-go/internal/dependencies/clock"
	"github.com/sorteoplay/minigames-go/internal/model"
)

// Scoring constants: points per remaining attempt, per secret letter,
// and the multiplier applied when the hint was used
const (
	pointsPerAttempt = 20
	pointsPerLetter  = 5
	hintMultiplier   = 0.7
)

// Service implements the hangman state machine
type Service struct {
	clock clock.Clock
}

// New creates a new hangman Service
func New(clock clock.Clock) *Service {
	return &Service{
		clock: clock,
	}
}

// NewGame builds a fresh in-progress game around the secret word
func (s *Service) NewGame(id model.GameID, userID model.UserID, secret string) *model.HangmanGame {
	secret = strings.ToUpper(secret)
	length := len([]rune(secret))

	return &model.HangmanGame{
		ID:                id,
		UserID:            userID,
		Secret:            secret,
		Revealed:          make([]string, length),
		MaxAttempts:       model.HangmanMaxAttempts,
		RemainingAttempts: model.HangmanMaxAttempts,
		Status:            model.StatusInProgress,
		StartedAt:         s.clock.Now(),
	}
}

// GuessLetter evaluates one letter. Repeated guesses and malformed input
// are rejected without consuming an attempt or mutating state. Returns
// whether the letter occurs in the secret.
func (s *Service) GuessLetter(game *model.HangmanGame, letter string) (bool, error) {
	if game.Status != model.StatusInProgress {
		return false, model.ErrGameFinished
	}

	letter = strings.ToUpper(letter)
	if !validLetter(letter) {
		return false, model.ErrInvalidLetter
	}
	if game.AlreadyGuessed(letter) {
		return false, model.ErrLetterAlreadyGuessed
	}

	secret := []rune(game.Secret)
	hit := false
	for i, r := range secret {
		if string(r) == letter {
			game.Revealed[i] = letter
			hit = true
		}
	}

	if hit {
		game.CorrectLetters = append(game.CorrectLetters, letter)
		if game.FullyRevealed() {
			game.Status = model.StatusWon
			game.EndedAt = s.clock.Now()
			game.Score = Score(game.RemainingAttempts, len(secret), game.HintUsed)
		}
		return true, nil
	}

	game.IncorrectLetters = append(game.IncorrectLetters, letter)
	game.RemainingAttempts--
	if game.RemainingAttempts <= 0 {
		game.Status = model.StatusLost
		game.EndedAt = s.clock.Now()
		game.Score = 0
	}
	return false, nil
}

// UseHint marks the hint as consumed. The flag is one-way and only
// affects the final score multiplier; it reveals nothing by itself.
func (s *Service) UseHint(game *model.HangmanGame) {
	if game.Status != model.StatusInProgress {
		return
	}
	game.HintUsed = true
}

// Score computes the winning score from remaining attempts, word length
// and hint usage
func Score(remainingAttempts, wordLength int, hintUsed bool) int {
	base := remainingAttempts*pointsPerAttempt + wordLength*pointsPerLetter
	if hintUsed {
		return int(math.Floor(float64(base) * hintMultiplier))
	}
	return base
}

// validLetter accepts a single uppercase letter A-Z or Ñ
func validLetter(letter string) bool {
	runes := []rune(letter)
	if len(runes) != 1 {
		return false
	}
	r := runes[0]
	return (r >= 'A' && r <= 'Z') || r == 'Ñ'
}
