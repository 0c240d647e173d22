package wordguess

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sorteoplay/minigames-go/internal/dependencies/mocks"
	"github.com/sorteoplay/minigames-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	s.service = New(s.clock)
}

func (s *ServiceSuite) newGame(secret string) *model.WordGuessGame {
	return s.service.NewGame("wordguess-TEST00000001", "user-1", secret)
}

// statuses extracts the status sequence from a scored row
func statuses(letters []model.GuessLetter) []model.LetterStatus {
	out := make([]model.LetterStatus, len(letters))
	for i, gl := range letters {
		out[i] = gl.Status
	}
	return out
}

func (s *ServiceSuite) TestNewGameInitialState() {
	game := s.newGame("playa")

	s.Equal("PLAYA", game.Secret)
	s.Equal(model.StatusInProgress, game.Status)
	s.Equal(model.MaxAttempts, game.MaxAttempts)
	s.Equal(0, game.Attempt)
	s.Len(game.Rows, model.MaxAttempts)
	for _, row := range game.Rows {
		s.False(row.Submitted)
		s.Len(row.Letters, 5)
		for _, gl := range row.Letters {
			s.Equal(model.LetterEmpty, gl.Status)
		}
	}
	s.Equal(6, game.AttemptsRemaining())
}

func (s *ServiceSuite) TestWinOnFirstAttemptScores100() {
	game := s.newGame("PLAYA")

	result, err := s.service.SubmitGuess(game, "playa")
	s.Require().NoError(err)

	s.Equal([]model.LetterStatus{
		model.LetterExact, model.LetterExact, model.LetterExact,
		model.LetterExact, model.LetterExact,
	}, statuses(result))
	s.Equal(model.StatusWon, game.Status)
	s.Equal(100, game.Score)
	s.Equal(s.clock.Now(), game.EndedAt)
}

func (s *ServiceSuite) TestWinScoreDropsByAttempt() {
	game := s.newGame("PLAYA")

	_, err := s.service.SubmitGuess(game, "MUNDO")
	s.Require().NoError(err)
	_, err = s.service.SubmitGuess(game, "GATOS")
	s.Require().NoError(err)
	_, err = s.service.SubmitGuess(game, "PLAYA")
	s.Require().NoError(err)

	s.Equal(model.StatusWon, game.Status)
	s.Equal(75, game.Score)
}

func (s *ServiceSuite) TestRepeatedGuessLetterConsumesOneOccurrence() {
	game := s.newGame("MANGO")

	result, err := s.service.SubmitGuess(game, "GOOSE")
	s.Require().NoError(err)

	// Secret holds one G and one O: the first O claims it, the second
	// comes back absent
	s.Equal([]model.LetterStatus{
		model.LetterPresent, // G
		model.LetterPresent, // O
		model.LetterAbsent,  // O
		model.LetterAbsent,  // S
		model.LetterAbsent,  // E
	}, statuses(result))
}

func (s *ServiceSuite) TestExactMatchConsumesBeforePresent() {
	game := s.newGame("MANGO")

	result, err := s.service.SubmitGuess(game, "OBONO")
	s.Require().NoError(err)

	// The final O is exact; the secret has no second O left for the first
	s.Equal([]model.LetterStatus{
		model.LetterAbsent,  // O, the only O was consumed by the exact match
		model.LetterAbsent,  // B
		model.LetterAbsent,  // O
		model.LetterPresent, // N, misplaced
		model.LetterExact,   // O
	}, statuses(result))
}

func (s *ServiceSuite) TestSixMissesLoseWithZeroScore() {
	game := s.newGame("PLAYA")

	for i := 0; i < model.MaxAttempts; i++ {
		_, err := s.service.SubmitGuess(game, "MUNDO")
		s.Require().NoError(err)
	}

	s.Equal(model.StatusLost, game.Status)
	s.Equal(0, game.Score)
	s.Equal(0, game.AttemptsRemaining())
}

func (s *ServiceSuite) TestSubmitAfterFinishRejected() {
	game := s.newGame("PLAYA")
	_, err := s.service.SubmitGuess(game, "PLAYA")
	s.Require().NoError(err)

	_, err = s.service.SubmitGuess(game, "MUNDO")
	s.ErrorIs(err, model.ErrGameFinished)
}

func (s *ServiceSuite) TestWrongLengthRejectedWithoutStateChange() {
	game := s.newGame("PLAYA")

	_, err := s.service.SubmitGuess(game, "SOL")
	s.ErrorIs(err, model.ErrInvalidWordLength)
	s.Equal(0, game.Attempt)
}

func (s *ServiceSuite) TestNonLetterRejected() {
	game := s.newGame("PLAYA")

	_, err := s.service.SubmitGuess(game, "PL4YA")
	s.ErrorIs(err, model.ErrInvalidWord)
	s.Equal(0, game.Attempt)
}

func (s *ServiceSuite) TestEnyeAccepted() {
	game := s.newGame("NIÑOS")

	result, err := s.service.SubmitGuess(game, "niños")
	s.Require().NoError(err)

	s.Equal(model.StatusWon, game.Status)
	s.Equal("Ñ", result[2].Letter)
}

func (s *ServiceSuite) TestAccentedVowelsFoldToBase() {
	game := s.newGame("ALLAS")

	// "ALLÁS" plays as "ALLAS"; the accent never reaches validation
	result, err := s.service.SubmitGuess(game, "allás")
	s.Require().NoError(err)

	s.Equal(model.StatusWon, game.Status)
	s.Equal("A", result[3].Letter)
}

func (s *ServiceSuite) TestAccentedSecretIsNormalized() {
	game := s.newGame("CAMIÓN")

	s.Equal("CAMION", game.Secret)
	s.Len(game.Rows[0].Letters, 6)
}

func (s *ServiceSuite) TestKeyboardOnlyUpgrades() {
	game := s.newGame("MANGO")

	// A is present here (secret position 1, guessed position 2)
	_, err := s.service.SubmitGuess(game, "PLAZA")
	s.Require().NoError(err)
	s.Equal(model.LetterPresent, game.Keyboard["A"])

	// Now A lands exactly; the keyboard must upgrade
	_, err = s.service.SubmitGuess(game, "MARCA")
	s.Require().NoError(err)
	s.Equal(model.LetterExact, game.Keyboard["A"])

	// A weaker status can never downgrade an exact
	_, err = s.service.SubmitGuess(game, "TIARA")
	s.Require().NoError(err)
	s.Equal(model.LetterExact, game.Keyboard["A"])
}
