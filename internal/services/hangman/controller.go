package hangman

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

// Controller orchestrates hangman sessions around the engine: daily
// eligibility, the day's word, and result recording
type Controller struct {
	service      *Service
	words        *words.Service
	entitlements *entitlement.Service
	storage      storage.Storage
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new hangman Controller
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
func (c *Controller) StartGame(ctx context.Context, userID model.UserID) (*model.HangmanGame, error) {
	played, _, err := c.entitlements.HasPlayedToday(ctx, userID, model.GameKindHangman)
	if err != nil {
		return nil, err
	}
	if played {
		if err := c.entitlements.ConsumeTicket(ctx, userID); err != nil {
			return nil, err
		}
	}

	word, err := c.words.DailyWord(ctx, model.GameKindHangman)
	if err != nil {
		return nil, err
	}

	game := c.service.NewGame(gameid.New(c.random, model.GameKindHangman), userID, word.Word)
	game.DailyWordID = word.ID
	game.Hint = word.Hint
	game.Category = word.Category

	c.logger.Info("hangman game started",
		slog.String("game_id", string(game.ID)),
		slog.String("user_id", string(userID)),
	)

	return game, nil
}

// Guess evaluates one letter and, when the game turns terminal, records
// the outcome and credits the score
func (c *Controller) Guess(ctx context.Context, game *model.HangmanGame, letter string) (bool, error) {
	hit, err := c.service.GuessLetter(game, letter)
	if err != nil {
		return false, err
	}

	if game.Status.Terminal() {
		c.finish(ctx, game)
	}

	return hit, nil
}

// UseHint reveals the stored hint text and marks the score multiplier
func (c *Controller) UseHint(game *model.HangmanGame) string {
	c.service.UseHint(game)
	return game.Hint
}

// finish persists the outcome; failures are logged and swallowed
func (c *Controller) finish(ctx context.Context, game *model.HangmanGame) {
	result := &model.GameResult{
		ID:           game.ID,
		UserID:       game.UserID,
		Kind:         model.GameKindHangman,
		Score:        game.Score,
		Won:          game.Status == model.StatusWon,
		Completed:    true,
		AttemptsUsed: game.MaxAttempts - game.RemainingAttempts,
		HintUsed:     game.HintUsed,
		TimeSeconds:  int(game.EndedAt.Sub(game.StartedAt).Seconds()),
		Day:          model.DayKey(game.EndedAt),
		PlayedAt:     game.EndedAt,
	}

	if err := c.storage.SaveGameResult(ctx, result); err != nil {
		c.logger.Error("failed to save hangman result",
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

	c.logger.Info("hangman game finished",
		slog.String("game_id", string(game.ID)),
		slog.String("status", string(game.Status)),
		slog.Int("score", game.Score),
	)
}
