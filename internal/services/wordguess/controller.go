package wordguess

import (
	"context"
	"log/slog"

	"github.com/sorteoplay/minigames-go/internal/dependencies/random"
	"github.com/sorteoplay/minigames-go/internal/model"
	"github.com/sorteoplay/minigames-go/internal/services/entitlement"
	"github.com/sorteoplay/minigames-go/internal/services/gameid"
	"github.com/sorteoplay/minigames-go/internal/services/words"
	"github.com/sorteoplay/minigames-go/internal/storage"
)

// Controller orchestrates word-guess sessions: daily eligibility, the
// day's secret word, and result recording once a game turns terminal
type Controller struct {
	service      *Service
	words        *words.Service
	entitlements *entitlement.Service
	storage      storage.Storage
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new word-guess Controller
func NewController(
	service *Service,
	words *words.Service,
	entitlements *entitlement.Service,
	storage storage.Storage,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		service:      service,
		words:        words,
		entitlements: entitlements,
		storage:      storage,
		random:       random,
		logger:       logger,
	}
}

// StartGame creates a new session against today's word. The first game
// of the day is free; replays consume a ticket.
func (c *Controller) StartGame(ctx context.Context, userID model.UserID) (*model.WordGuessGame, error) {
	played, _, err := c.entitlements.HasPlayedToday(ctx, userID, model.GameKindWordGuess)
	if err != nil {
		return nil, err
	}
	if played {
		if err := c.entitlements.ConsumeTicket(ctx, userID); err != nil {
			return nil, err
		}
	}

	word, err := c.words.DailyWord(ctx, model.GameKindWordGuess)
	if err != nil {
		return nil, err
	}

	game := c.service.NewGame(gameid.New(c.random, model.GameKindWordGuess), userID, word.Word)
	game.DailyWordID = word.ID

	c.logger.Info("word guess game started",
		slog.String("game_id", string(game.ID)),
		slog.String("user_id", string(userID)),
	)

	return game, nil
}

// Submit scores one guess and, when the game turns terminal, records the
// outcome and credits the score
func (c *Controller) Submit(ctx context.Context, game *model.WordGuessGame, word string) ([]model.GuessLetter, error) {
	result, err := c.service.SubmitGuess(game, word)
	if err != nil {
		return nil, err
	}

	if game.Status.Terminal() {
		c.finish(ctx, game)
	}

	return result, nil
}

// finish persists the outcome; a failed save is logged and swallowed so
// gameplay is never disrupted by the persistence backend
func (c *Controller) finish(ctx context.Context, game *model.WordGuessGame) {
	result := &model.GameResult{
		ID:           game.ID,
		UserID:       game.UserID,
		Kind:         model.GameKindWordGuess,
		Score:        game.Score,
		Won:          game.Status == model.StatusWon,
		Completed:    true,
		AttemptsUsed: game.Attempt,
		TimeSeconds:  int(game.EndedAt.Sub(game.StartedAt).Seconds()),
		Day:          model.DayKey(game.EndedAt),
		PlayedAt:     game.EndedAt,
	}

	if err := c.storage.SaveGameResult(ctx, result); err != nil {
		c.logger.Error("failed to save word guess result",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return
	}

	if game.Score > 0 {
		if err := c.entitlements.AddPoints(ctx, game.UserID, game.Score); err != nil {
			c.logger.Error("failed to credit points",
				slog.String("game_id", string(game.ID)),
				slog.String("error", err.Error()),
			)
		}
	}

	c.logger.Info("word guess game finished",
		slog.String("game_id", string(game.ID)),
		slog.String("status", string(game.Status)),
		slog.Int("score", game.Score),
		slog.Int("attempts", game.Attempt),
	)
}
