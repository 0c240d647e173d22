package entitlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sorteoplay/minigames-go/internal/dependencies/mocks"
	"github.com/sorteoplay/minigames-go/internal/model"
	"github.com/sorteoplay/minigames-go/internal/storage/memory"
	"github.com/sorteoplay/minigames-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestGetOrCreateProfileCreatesOnFirstContact() {
	profile, err := s.service.GetOrCreateProfile(s.ctx, "user-1")
	s.Require().NoError(err)

	s.Equal(model.UserID("user-1"), profile.UserID)
	s.Equal(0, profile.Points)
	s.Equal(0, profile.TicketsAvailable)
	s.Equal(s.clock.Now(), profile.CreatedAt)

	// Second call returns the stored profile, not a fresh one
	s.Require().NoError(s.service.AddPoints(s.ctx, "user-1", 10))
	again, err := s.service.GetOrCreateProfile(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(10, again.Points)
}

func (s *ServiceSuite) TestHasPlayedToday() {
	played, _, err := s.service.HasPlayedToday(s.ctx, "user-1", model.GameKindWordGuess)
	s.Require().NoError(err)
	s.False(played)

	err = s.storage.SaveGameResult(s.ctx, &model.GameResult{
		ID:     "wordguess-RESULT0000001",
		UserID: "user-1",
		Kind:   model.GameKindWordGuess,
		Score:  75,
		Day:    model.DayKey(s.clock.Now()),
	})
	s.Require().NoError(err)

	played, result, err := s.service.HasPlayedToday(s.ctx, "user-1", model.GameKindWordGuess)
	s.Require().NoError(err)
	s.True(played)
	s.Equal(75, result.Score)

	// A different kind is unaffected
	played, _, err = s.service.HasPlayedToday(s.ctx, "user-1", model.GameKindHangman)
	s.Require().NoError(err)
	s.False(played)

	// The next day it resets
	s.clock.Advance(24 * time.Hour)
	played, _, err = s.service.HasPlayedToday(s.ctx, "user-1", model.GameKindWordGuess)
	s.Require().NoError(err)
	s.False(played)
}

func (s *ServiceSuite) TestConsumeTicketFailsWhenEmpty() {
	err := s.service.ConsumeTicket(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrNoTicketsAvailable)
}

func (s *ServiceSuite) TestConsumeAndRefundTicket() {
	s.Require().NoError(s.service.GrantTickets(s.ctx, "user-1", 2))

	s.Require().NoError(s.service.ConsumeTicket(s.ctx, "user-1"))
	profile, err := s.service.GetOrCreateProfile(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(1, profile.TicketsAvailable)
	s.Equal(1, profile.TicketsUsed)

	s.Require().NoError(s.service.RefundTicket(s.ctx, "user-1"))
	profile, err = s.service.GetOrCreateProfile(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(2, profile.TicketsAvailable)
	s.Equal(0, profile.TicketsUsed)
}

func (s *ServiceSuite) TestRefundWithoutConsumptionIsNoop() {
	s.Require().NoError(s.service.RefundTicket(s.ctx, "user-1"))

	profile, err := s.service.GetOrCreateProfile(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(0, profile.TicketsAvailable)
	s.Equal(0, profile.TicketsUsed)
}

func (s *ServiceSuite) TestPointsLedger() {
	s.Require().NoError(s.service.AddPoints(s.ctx, "user-1", 30))

	points, err := s.service.Points(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(30, points)

	s.Require().NoError(s.service.DeductPoints(s.ctx, "user-1", 20))
	points, err = s.service.Points(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(10, points)
}

func (s *ServiceSuite) TestDeductPointsFailsWithoutMutation() {
	s.Require().NoError(s.service.AddPoints(s.ctx, "user-1", 4))

	err := s.service.DeductPoints(s.ctx, "user-1", 5)
	s.ErrorIs(err, model.ErrInsufficientPoints)

	points, err := s.service.Points(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(4, points)
}

func (s *ServiceSuite) TestNonPositiveAmountsAreNoops() {
	s.Require().NoError(s.service.AddPoints(s.ctx, "user-1", 0))
	s.Require().NoError(s.service.AddPoints(s.ctx, "user-1", -5))
	s.Require().NoError(s.service.GrantTickets(s.ctx, "user-1", 0))

	profile, err := s.service.GetOrCreateProfile(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(0, profile.Points)
	s.Equal(0, profile.TicketsAvailable)
}
