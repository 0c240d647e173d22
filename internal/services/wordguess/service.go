package wordguess

import (
	"strings"

	"github.com/sorteoplay/minigames-go/internal/dependencies/clock"
	"github.com/sorteoplay/minigames-go/internal/model"
)

// attemptScores maps attempts used (1-indexed) to the winning score
var attemptScores = [model.MaxAttempts]int{100, 90, 75, 60, 45, 30}

// Service implements the word-guessing state machine
type Service struct {
	clock clock.Clock
}

// New creates a new word-guess Service
func New(clock clock.Clock) *Service {
	return &Service{
		clock: clock,
	}
}

// NewGame builds a fresh in-progress game around the secret word, with
// empty rows pre-allocated for every attempt
func (s *Service) NewGame(id model.GameID, userID model.UserID, secret string) *model.WordGuessGame {
	secret = foldAccents(strings.ToUpper(secret))
	length := len([]rune(secret))

	rows := make([]model.GuessRow, model.MaxAttempts)
	for i := range rows {
		letters := make([]model.GuessLetter, length)
		for j := range letters {
			letters[j] = model.GuessLetter{Status: model.LetterEmpty}
		}
		rows[i] = model.GuessRow{Letters: letters}
	}

	return &model.WordGuessGame{
		ID:          id,
		UserID:      userID,
		Secret:      secret,
		MaxAttempts: model.MaxAttempts,
		Rows:        rows,
		Keyboard:    make(map[string]model.LetterStatus),
		Status:      model.StatusInProgress,
		StartedAt:   s.clock.Now(),
	}
}

// SubmitGuess validates and scores one guess, advancing the attempt
// counter and resolving win/loss. Invalid guesses are rejected without
// any state change.
func (s *Service) SubmitGuess(game *model.WordGuessGame, word string) ([]model.GuessLetter, error) {
	if game.Status != model.StatusInProgress {
		return nil, model.ErrGameFinished
	}

	guess := []rune(foldAccents(strings.ToUpper(word)))
	secret := []rune(game.Secret)

	if len(guess) != len(secret) {
		return nil, model.ErrInvalidWordLength
	}
	for _, r := range guess {
		if !validLetter(r) {
			return nil, model.ErrInvalidWord
		}
	}

	result := scoreGuess(secret, guess)

	row := &game.Rows[game.Attempt]
	row.Letters = result
	row.Submitted = true
	game.Attempt++

	// Keyboard feedback only ever upgrades: absent < present < exact
	for _, gl := range result {
		if gl.Status.Upgrades(game.Keyboard[gl.Letter]) {
			game.Keyboard[gl.Letter] = gl.Status
		}
	}

	if allExact(result) {
		game.Status = model.StatusWon
		game.Score = scoreForAttempts(game.Attempt)
		game.EndedAt = s.clock.Now()
	} else if game.Attempt >= game.MaxAttempts {
		game.Status = model.StatusLost
		game.Score = 0
		game.EndedAt = s.clock.Now()
	}

	return result, nil
}

// scoreGuess applies the two-pass consumption algorithm: exact matches
// first, then each remaining guessed letter claims one unconsumed
// occurrence in the secret or is marked absent. Repeated letters in the
// guess therefore resolve correctly against a single occurrence in the
// secret.
func scoreGuess(secret, guess []rune) []model.GuessLetter {
	n := len(guess)
	result := make([]model.GuessLetter, n)
	remaining := make(map[rune]int)

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			result[i] = model.GuessLetter{Letter: string(guess[i]), Status: model.LetterExact}
		} else {
			result[i] = model.GuessLetter{Letter: string(guess[i]), Status: model.LetterAbsent}
			remaining[secret[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if result[i].Status == model.LetterExact {
			continue
		}
		if remaining[guess[i]] > 0 {
			result[i].Status = model.LetterPresent
			remaining[guess[i]]--
		}
	}

	return result
}

// scoreForAttempts is the fixed win-score lookup by attempts used
func scoreForAttempts(attemptsUsed int) int {
	if attemptsUsed < 1 || attemptsUsed > len(attemptScores) {
		return 0
	}
	return attemptScores[attemptsUsed-1]
}

func allExact(letters []model.GuessLetter) bool {
	for _, gl := range letters {
		if gl.Status != model.LetterExact {
			return false
		}
	}
	return true
}

// validLetter accepts uppercase A-Z plus Ñ
func validLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || r == 'Ñ'
}

// accentFolds maps accented Spanish vowels to their base letter. Ñ is a
// distinct letter and is never folded.
var accentFolds = map[rune]rune{
	'Á': 'A',
	'É': 'E',
	'Í': 'I',
	'Ó': 'O',
	'Ú': 'U',
	'Ü': 'U',
}

// foldAccents strips diacritics so "ALLÁ" plays as "ALLA"
func foldAccents(s string) string {
	return strings.Map(func(r rune) rune {
		if base, ok := accentFolds[r]; ok {
			return base
		}
		return r
	}, s)
}
