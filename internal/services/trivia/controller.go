package trivia

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sorteoplay/minigames-go/internal/dependencies/random"
	"github.com/sorteoplay/minigames-go/internal/model"
	"github.com/sorteoplay/minigames-go/internal/services/entitlement"
	"github.com/sorteoplay/minigames-go/internal/services/gameid"
	"github.com/sorteoplay/minigames-go/internal/storage"
)

// Config holds configuration for the trivia controller
type Config struct {
	// AdvanceDelay is how long the correct answer stays on screen before
	// the next question loads. Zero advances synchronously.
	AdvanceDelay time.Duration
}

// DefaultConfig returns default trivia configuration
func DefaultConfig() Config {
	return Config{
		AdvanceDelay: 2 * time.Second,
	}
}

// Controller orchestrates trivia sessions: question loading, answer and
// skip flow, the delayed advance after a correct answer, and result
// recording on game over
type Controller struct {
	service      *Service
	source       QuestionSource
	entitlements *entitlement.Service
	storage      storage.Storage
	random       random.Random
	logger       *slog.Logger
	cfg          Config

	mu sync.Mutex
	// timers tracks the pending auto-advance per session so a reset or
	// discarded game never gets mutated by a stale advance
	timers map[model.GameID]*time.Timer
}

// NewController creates a new trivia Controller
func NewController(
	service *Service,
	source QuestionSource,
	entitlements *entitlement.Service,
	storage storage.Storage,
	random random.Random,
	logger *slog.Logger,
	cfg Config,
) *Controller {
	if cfg.AdvanceDelay < 0 {
		cfg = DefaultConfig()
	}
	return &Controller{
		service:      service,
		source:       source,
		entitlements: entitlements,
		storage:      storage,
		random:       random,
		logger:       logger,
		cfg:          cfg,
		timers:       make(map[model.GameID]*time.Timer),
	}
}

// StartGame creates a session and loads its first question. The first
// game of the day is free; replays consume a ticket.
func (c *Controller) StartGame(ctx context.Context, userID model.UserID) (*model.TriviaGame, error) {
	played, _, err := c.entitlements.HasPlayedToday(ctx, userID, model.GameKindTrivia)
	if err != nil {
		return nil, err
	}
	if played {
		if err := c.entitlements.ConsumeTicket(ctx, userID); err != nil {
			return nil, err
		}
	}

	game := c.service.NewGame(gameid.New(c.random, model.GameKindTrivia), userID)
	if err := c.service.Begin(game); err != nil {
		return nil, err
	}
	c.loadNext(ctx, game)

	c.logger.Info("trivia game started",
		slog.String("game_id", string(game.ID)),
		slog.String("user_id", string(userID)),
	)

	return game, nil
}

// Answer evaluates the selected option. A correct answer schedules the
// next question after the configured delay; an incorrect one ends the
// game and records the result.
func (c *Controller) Answer(ctx context.Context, game *model.TriviaGame, selected string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// The answered question stays on screen until the advance fires;
	// input during the reveal is rejected so it cannot be scored twice
	if _, pending := c.timers[game.ID]; pending {
		return false, model.ErrAdvancePending
	}

	correct, err := c.service.Answer(game, selected)
	if err != nil {
		return false, err
	}

	if correct {
		c.scheduleAdvance(game)
		return true, nil
	}

	c.finish(ctx, game)
	return false, nil
}

// Skip pays the escalating cost and reloads a question at the same
// ordinal, keeping the difficulty tier unchanged
func (c *Controller) Skip(ctx context.Context, game *model.TriviaGame) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, pending := c.timers[game.ID]; pending {
		return 0, model.ErrAdvancePending
	}

	cost, err := c.service.Skip(game)
	if err != nil {
		return 0, err
	}

	// loadNext advances the ordinal, so step back first to stay on the
	// same tier
	game.Ordinal--
	c.loadNext(ctx, game)

	c.logger.Info("trivia question skipped",
		slog.String("game_id", string(game.ID)),
		slog.Int("cost", cost),
		slog.Int("score", game.Score),
	)

	return cost, nil
}

// Reset cancels any pending auto-advance for a session being discarded.
// The game object itself is simply dropped by the caller.
func (c *Controller) Reset(game *model.TriviaGame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelTimerLocked(game.ID)
}

// loadNext advances the ordinal and installs a question from the source.
// The source contract guarantees a question; a nil return is treated as
// a source bug and patched with the built-in default.
func (c *Controller) loadNext(ctx context.Context, game *model.TriviaGame) {
	game.Ordinal++
	tier := model.TierFor(game.Ordinal)

	q := c.source.FetchQuestion(ctx, tier, game.ServedTexts)
	if q == nil {
		c.logger.Warn("question source returned nil, using default",
			slog.String("game_id", string(game.ID)),
			slog.String("tier", string(tier)),
		)
		q = NewBankSource(c.random).DefaultQuestion(tier)
	}

	c.service.SetQuestion(game, q)
}

// scheduleAdvance arms the reveal-then-advance timer for a correctly
// answered question. Caller holds c.mu.
func (c *Controller) scheduleAdvance(game *model.TriviaGame) {
	c.cancelTimerLocked(game.ID)

	if c.cfg.AdvanceDelay == 0 {
		c.loadNext(context.Background(), game)
		return
	}

	c.timers[game.ID] = time.AfterFunc(c.cfg.AdvanceDelay, func() {
		c.advance(game)
	})
}

// advance fires from the timer; it is suppressed when the session was
// reset or already terminal
func (c *Controller) advance(game *model.TriviaGame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.timers[game.ID]; !ok {
		return
	}
	delete(c.timers, game.ID)

	if game.Status != model.StatusInProgress {
		return
	}
	c.loadNext(context.Background(), game)
}

func (c *Controller) cancelTimerLocked(id model.GameID) {
	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
}

// finish persists the outcome; failures are logged and swallowed
func (c *Controller) finish(ctx context.Context, game *model.TriviaGame) {
	result := &model.GameResult{
		ID:                game.ID,
		UserID:            game.UserID,
		Kind:              model.GameKindTrivia,
		Score:             game.Score,
		Completed:         true,
		SkipsUsed:         game.SkipsUsed,
		QuestionsAnswered: game.Answered,
		TimeSeconds:       int(game.EndedAt.Sub(game.StartedAt).Seconds()),
		Day:               model.DayKey(game.EndedAt),
		PlayedAt:          game.EndedAt,
	}

	if err := c.storage.SaveGameResult(ctx, result); err != nil {
		c.logger.Error("failed to save trivia result",
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

	c.logger.Info("trivia game finished",
		slog.String("game_id", string(game.ID)),
		slog.Int("score", game.Score),
		slog.Int("answered", game.Answered),
		slog.Int("skips", game.SkipsUsed),
	)
}
