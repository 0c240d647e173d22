package trivia

import (
	"github.com/sorteoplay/minigames-go/internal/dependencies/clock"
	"github.com/sorteoplay/minigames-go/internal/model"
)

// Skip cost constants: base cost and the factor it escalates by per use
const (
	skipBaseCost   = 5
	skipCostFactor = 3
)

// SkipCost returns the point cost of the next skip given how many skips
// were already used: 5, 15, 45, ... escalating geometrically
func SkipCost(skipsUsed int) int {
	cost := skipBaseCost
	for i := 0; i < skipsUsed; i++ {
		cost *= skipCostFactor
	}
	return cost
}

// Service implements the trivia state machine
type Service struct {
	clock clock.Clock
}

// New creates a new trivia Service
func New(clock clock.Clock) *Service {
	return &Service{
		clock: clock,
	}
}

// NewGame builds a fresh, not-yet-started session
func (s *Service) NewGame(id model.GameID, userID model.UserID) *model.TriviaGame {
	return &model.TriviaGame{
		ID:     id,
		UserID: userID,
		Status: model.StatusNotStarted,
	}
}

// Begin moves the session into play
func (s *Service) Begin(game *model.TriviaGame) error {
	if game.Status != model.StatusNotStarted {
		return model.ErrGameFinished
	}
	game.Status = model.StatusInProgress
	game.StartedAt = s.clock.Now()
	return nil
}

// SetQuestion installs the next question and records its text so the
// source can avoid repeats within this session
func (s *Service) SetQuestion(game *model.TriviaGame, q *model.Question) {
	game.Current = q
	game.ServedTexts = append(game.ServedTexts, q.Text)
}

// Answer evaluates the selected option against the current question.
// A correct answer scores the ordinal's point value; an incorrect one
// permanently ends the game.
func (s *Service) Answer(game *model.TriviaGame, selected string) (bool, error) {
	if game.Status == model.StatusNotStarted {
		return false, model.ErrGameNotStarted
	}
	if game.Status != model.StatusInProgress {
		return false, model.ErrGameFinished
	}
	if game.Current == nil {
		return false, model.ErrNoCurrentQuestion
	}

	if selected == game.Current.CorrectAnswer {
		game.Score += model.PointsFor(game.Ordinal)
		game.Answered++
		return true, nil
	}

	game.Status = model.StatusGameOver
	game.EndedAt = s.clock.Now()
	return false, nil
}

// Skip pays the escalating skip cost. The skip is rejected when it
// would drive the score negative.
func (s *Service) Skip(game *model.TriviaGame) (int, error) {
	if game.Status == model.StatusNotStarted {
		return 0, model.ErrGameNotStarted
	}
	if game.Status != model.StatusInProgress {
		return 0, model.ErrGameFinished
	}

	cost := SkipCost(game.SkipsUsed)
	if game.Score-cost < 0 {
		return 0, model.ErrSkipUnaffordable
	}

	game.Score -= cost
	game.SkipsUsed++
	return cost, nil
}
