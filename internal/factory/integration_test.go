package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sorteoplay/minigames-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) scheduleWords() {
	day := model.DayKey(s.app.MockClock.Now())
	s.Require().NoError(s.app.WordsService.ScheduleWord(s.ctx, &model.DailyWord{
		ID:   "dw-guess",
		Kind: model.GameKindWordGuess,
		Word: "PLAYA",
		Date: day,
	}))
	s.Require().NoError(s.app.WordsService.ScheduleWord(s.ctx, &model.DailyWord{
		ID:       "dw-hang",
		Kind:     model.GameKindHangman,
		Word:     "GATO",
		Hint:     "Animal doméstico",
		Category: "Animales",
		Date:     day,
	}))
}

// Test: one user plays every word-based game in a day and the points
// ledger accumulates across them
func (s *IntegrationSuite) TestFullDayAcrossGames() {
	s.scheduleWords()
	user := model.UserID("user-1")

	// Word guess: win on the first attempt for 100 points
	wg, err := s.app.WordGuessController.StartGame(s.ctx, user)
	s.Require().NoError(err)
	_, err = s.app.WordGuessController.Submit(s.ctx, wg, "PLAYA")
	s.Require().NoError(err)
	s.Equal(model.StatusWon, wg.Status)

	points, err := s.app.EntitlementService.Points(s.ctx, user)
	s.Require().NoError(err)
	s.Equal(100, points)

	// Hangman: flawless win for 6*20 + 4*5 = 140 points
	hg, err := s.app.HangmanController.StartGame(s.ctx, user)
	s.Require().NoError(err)
	for _, l := range []string{"G", "A", "T", "O"} {
		_, err := s.app.HangmanController.Guess(s.ctx, hg, l)
		s.Require().NoError(err)
	}
	s.Equal(model.StatusWon, hg.Status)

	points, err = s.app.EntitlementService.Points(s.ctx, user)
	s.Require().NoError(err)
	s.Equal(240, points)

	// Trivia: two correct answers, then a wrong one ends the run at 20
	tg, err := s.app.TriviaController.StartGame(s.ctx, user)
	s.Require().NoError(err)
	for i := 0; i < 2; i++ {
		correct, err := s.app.TriviaController.Answer(s.ctx, tg, tg.Current.CorrectAnswer)
		s.Require().NoError(err)
		s.Require().True(correct)
	}
	var wrong string
	for _, opt := range tg.Current.Options {
		if opt != tg.Current.CorrectAnswer {
			wrong = opt
			break
		}
	}
	correct, err := s.app.TriviaController.Answer(s.ctx, tg, wrong)
	s.Require().NoError(err)
	s.False(correct)
	s.Equal(model.StatusGameOver, tg.Status)

	points, err = s.app.EntitlementService.Points(s.ctx, user)
	s.Require().NoError(err)
	s.Equal(260, points)

	// Each game kind recorded exactly one result for the day
	day := model.DayKey(s.app.MockClock.Now())
	for _, kind := range []model.GameKind{model.GameKindWordGuess, model.GameKindHangman, model.GameKindTrivia} {
		_, err := s.app.Storage.GetGameResultForDay(s.ctx, user, kind, day)
		s.Require().NoError(err, string(kind))
	}
}

// Test: a finished game blocks free replays until a ticket is granted,
// and the next day resets eligibility
func (s *IntegrationSuite) TestReplayTicketsAndDailyReset() {
	s.scheduleWords()
	user := model.UserID("user-1")

	wg, err := s.app.WordGuessController.StartGame(s.ctx, user)
	s.Require().NoError(err)
	_, err = s.app.WordGuessController.Submit(s.ctx, wg, "PLAYA")
	s.Require().NoError(err)

	_, err = s.app.WordGuessController.StartGame(s.ctx, user)
	s.ErrorIs(err, model.ErrNoTicketsAvailable)

	s.Require().NoError(s.app.EntitlementService.GrantTickets(s.ctx, user, 1))
	_, err = s.app.WordGuessController.StartGame(s.ctx, user)
	s.Require().NoError(err)

	// A different user is unaffected
	_, err = s.app.WordGuessController.StartGame(s.ctx, "user-2")
	s.Require().NoError(err)

	// The next day the first game is free again
	s.app.MockClock.Advance(24 * time.Hour)
	s.scheduleWords()
	_, err = s.app.WordGuessController.StartGame(s.ctx, user)
	s.Require().NoError(err)
}
