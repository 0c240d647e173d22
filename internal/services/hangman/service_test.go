package hangman

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

func (s *ServiceSuite) newGame(secret string) *model.HangmanGame {
	return s.service.NewGame("hangman-TEST00000001", "user-1", secret)
}

func (s *ServiceSuite) TestNewGameInitialState() {
	game := s.newGame("gato")

	s.Equal("GATO", game.Secret)
	s.Equal(model.StatusInProgress, game.Status)
	s.Equal(model.HangmanMaxAttempts, game.RemainingAttempts)
	s.Equal("____", game.Pattern())
}

func (s *ServiceSuite) TestCorrectGuessRevealsAllOccurrences() {
	game := s.newGame("BANANA")

	hit, err := s.service.GuessLetter(game, "a")
	s.Require().NoError(err)

	s.True(hit)
	s.Equal("_A_A_A", game.Pattern())
	s.Equal([]string{"A"}, game.CorrectLetters)
	s.Equal(model.HangmanMaxAttempts, game.RemainingAttempts)
}

func (s *ServiceSuite) TestWrongGuessConsumesAttempt() {
	game := s.newGame("GATO")

	hit, err := s.service.GuessLetter(game, "Z")
	s.Require().NoError(err)

	s.False(hit)
	s.Equal([]string{"Z"}, game.IncorrectLetters)
	s.Equal(model.HangmanMaxAttempts-1, game.RemainingAttempts)
}

func (s *ServiceSuite) TestRepeatedGuessRejectedWithoutPenalty() {
	game := s.newGame("GATO")
	_, err := s.service.GuessLetter(game, "Z")
	s.Require().NoError(err)

	_, err = s.service.GuessLetter(game, "Z")
	s.ErrorIs(err, model.ErrLetterAlreadyGuessed)
	s.Equal(model.HangmanMaxAttempts-1, game.RemainingAttempts)

	_, err = s.service.GuessLetter(game, "G")
	s.Require().NoError(err)
	_, err = s.service.GuessLetter(game, "G")
	s.ErrorIs(err, model.ErrLetterAlreadyGuessed)
}

func (s *ServiceSuite) TestInvalidLetterRejected() {
	game := s.newGame("GATO")

	for _, input := range []string{"", "AB", "1", "-"} {
		_, err := s.service.GuessLetter(game, input)
		s.ErrorIs(err, model.ErrInvalidLetter)
	}
	s.Equal(model.HangmanMaxAttempts, game.RemainingAttempts)
}

func (s *ServiceSuite) TestEnyeAccepted() {
	game := s.newGame("NIÑO")

	hit, err := s.service.GuessLetter(game, "ñ")
	s.Require().NoError(err)

	s.True(hit)
	s.Equal("__Ñ_", game.Pattern())
}

func (s *ServiceSuite) TestWinScoresByRemainingAttemptsAndLength() {
	game := s.newGame("GATO")
	for _, l := range []string{"X", "Z"} {
		_, err := s.service.GuessLetter(game, l)
		s.Require().NoError(err)
	}
	for _, l := range []string{"G", "A", "T", "O"} {
		_, err := s.service.GuessLetter(game, l)
		s.Require().NoError(err)
	}

	s.Equal(model.StatusWon, game.Status)
	// 4 remaining * 20 + 4 letters * 5
	s.Equal(100, game.Score)
	s.Equal(s.clock.Now(), game.EndedAt)
}

func (s *ServiceSuite) TestHintReducesScore() {
	game := s.newGame("GATO")
	s.service.UseHint(game)
	s.True(game.HintUsed)

	for _, l := range []string{"G", "A", "T", "O"} {
		_, err := s.service.GuessLetter(game, l)
		s.Require().NoError(err)
	}

	s.Equal(model.StatusWon, game.Status)
	// floor((6*20 + 4*5) * 0.7)
	s.Equal(98, game.Score)
}

func (s *ServiceSuite) TestSixMissesLoseWithZeroScore() {
	game := s.newGame("GATO")

	for _, l := range []string{"B", "C", "D", "E", "F", "H"} {
		_, err := s.service.GuessLetter(game, l)
		s.Require().NoError(err)
	}

	s.Equal(model.StatusLost, game.Status)
	s.Equal(0, game.Score)
	s.Equal(0, game.RemainingAttempts)

	_, err := s.service.GuessLetter(game, "G")
	s.ErrorIs(err, model.ErrGameFinished)
}

func (s *ServiceSuite) TestScoreFormula() {
	s.Equal(120, Score(4, 8, false))
	s.Equal(84, Score(4, 8, true))
	s.Equal(160, Score(6, 8, false))
}

func (s *ServiceSuite) TestUseHintAfterFinishIsNoop() {
	game := s.newGame("GATO")
	for _, l := range []string{"G", "A", "T", "O"} {
		_, err := s.service.GuessLetter(game, l)
		s.Require().NoError(err)
	}
	s.Require().Equal(model.StatusWon, game.Status)

	s.service.UseHint(game)
	s.False(game.HintUsed)
}
