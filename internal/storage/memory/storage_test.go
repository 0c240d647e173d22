package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sorteoplay/minigames-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Profile tests

func (s *StorageSuite) TestSaveAndGetProfile() {
	profile := &model.Profile{
		UserID:           "user-1",
		Points:           120,
		TicketsAvailable: 2,
		CreatedAt:        time.Now(),
	}
	s.Require().NoError(s.storage.SaveProfile(s.ctx, profile))

	got, err := s.storage.GetProfile(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(120, got.Points)
	s.Equal(2, got.TicketsAvailable)
}

func (s *StorageSuite) TestGetMissingProfile() {
	_, err := s.storage.GetProfile(s.ctx, "missing")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *StorageSuite) TestDeleteProfile() {
	profile := &model.Profile{UserID: "user-1"}
	s.Require().NoError(s.storage.SaveProfile(s.ctx, profile))
	s.Require().NoError(s.storage.DeleteProfile(s.ctx, "user-1"))

	_, err := s.storage.GetProfile(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

// Game result tests

func (s *StorageSuite) TestSaveAndGetGameResult() {
	result := &model.GameResult{
		ID:     "wordguess-GAME000000001",
		UserID: "user-1",
		Kind:   model.GameKindWordGuess,
		Score:  90,
		Won:    true,
		Day:    "2024-03-10",
	}
	s.Require().NoError(s.storage.SaveGameResult(s.ctx, result))

	got, err := s.storage.GetGameResult(s.ctx, result.ID)
	s.Require().NoError(err)
	s.Equal(90, got.Score)
	s.True(got.Won)
}

func (s *StorageSuite) TestGetMissingGameResult() {
	_, err := s.storage.GetGameResult(s.ctx, "missing")
	s.ErrorIs(err, model.ErrResultNotFound)
}

func (s *StorageSuite) TestGetGameResultForDay() {
	result := &model.GameResult{
		ID:     "hangman-GAME000000001",
		UserID: "user-1",
		Kind:   model.GameKindHangman,
		Score:  140,
		Day:    "2024-03-10",
	}
	s.Require().NoError(s.storage.SaveGameResult(s.ctx, result))

	got, err := s.storage.GetGameResultForDay(s.ctx, "user-1", model.GameKindHangman, "2024-03-10")
	s.Require().NoError(err)
	s.Equal(result.ID, got.ID)

	_, err = s.storage.GetGameResultForDay(s.ctx, "user-1", model.GameKindHangman, "2024-03-11")
	s.ErrorIs(err, model.ErrResultNotFound)
	_, err = s.storage.GetGameResultForDay(s.ctx, "user-2", model.GameKindHangman, "2024-03-10")
	s.ErrorIs(err, model.ErrResultNotFound)
	_, err = s.storage.GetGameResultForDay(s.ctx, "user-1", model.GameKindTrivia, "2024-03-10")
	s.ErrorIs(err, model.ErrResultNotFound)
}

func (s *StorageSuite) TestDayIndexKeepsLatestResult() {
	first := &model.GameResult{
		ID:     "trivia-GAME000000001",
		UserID: "user-1",
		Kind:   model.GameKindTrivia,
		Score:  30,
		Day:    "2024-03-10",
	}
	second := &model.GameResult{
		ID:     "trivia-GAME000000002",
		UserID: "user-1",
		Kind:   model.GameKindTrivia,
		Score:  80,
		Day:    "2024-03-10",
	}
	s.Require().NoError(s.storage.SaveGameResult(s.ctx, first))
	s.Require().NoError(s.storage.SaveGameResult(s.ctx, second))

	got, err := s.storage.GetGameResultForDay(s.ctx, "user-1", model.GameKindTrivia, "2024-03-10")
	s.Require().NoError(err)
	s.Equal(second.ID, got.ID)

	// Both results stay retrievable by ID
	_, err = s.storage.GetGameResult(s.ctx, first.ID)
	s.Require().NoError(err)
}

// Daily word tests

func (s *StorageSuite) TestSaveAndGetDailyWord() {
	word := &model.DailyWord{
		ID:   "dw-1",
		Kind: model.GameKindWordGuess,
		Word: "PLAYA",
		Date: "2024-03-10",
	}
	s.Require().NoError(s.storage.SaveDailyWord(s.ctx, word))

	got, err := s.storage.GetDailyWord(s.ctx, model.GameKindWordGuess, "2024-03-10")
	s.Require().NoError(err)
	s.Equal("PLAYA", got.Word)

	_, err = s.storage.GetDailyWord(s.ctx, model.GameKindHangman, "2024-03-10")
	s.ErrorIs(err, model.ErrDailyWordNotFound)
	_, err = s.storage.GetDailyWord(s.ctx, model.GameKindWordGuess, "2024-03-11")
	s.ErrorIs(err, model.ErrDailyWordNotFound)
}
