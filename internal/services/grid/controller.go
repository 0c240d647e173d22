package grid

import (
	"context"
	"log/slog"

	"github.com/sorteoplay/minigames-go/internal/dependencies/clock"
	"github.com/sorteoplay/minigames-go/internal/dependencies/random"
	"github.com/sorteoplay/minigames-go/internal/model"
	"github.com/sorteoplay/minigames-go/internal/services/entitlement"
	"github.com/sorteoplay/minigames-go/internal/services/gameid"
	"github.com/sorteoplay/minigames-go/internal/storage"
)

// hintCost is the point price of revealing one cell; the points ledger
// must cover it before a hint is granted
const hintCost = 5

// Scoring tables by difficulty
var (
	basePoints = map[model.Difficulty]int{
		model.DifficultyEasy:   10,
		model.DifficultyMedium: 25,
		model.DifficultyHard:   50,
	}
	timeBonusStart = map[model.Difficulty]int{
		model.DifficultyEasy:   10,
		model.DifficultyMedium: 15,
		model.DifficultyHard:   20,
	}
)

// Controller orchestrates number-grid play sessions around the engine:
// eligibility, move history, paid hints, and result recording
type Controller struct {
	service      *Service
	entitlements *entitlement.Service
	storage      storage.Storage
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new grid Controller
func NewController(
	service *Service,
	entitlements *entitlement.Service,
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		service:      service,
		entitlements: entitlements,
		storage:      storage,
		clock:        clock,
		random:       random,
		logger:       logger,
	}
}

// StartGame generates a fresh puzzle session. The first game of the day
// is free; replays consume a ticket, refundable via Abandon.
func (c *Controller) StartGame(ctx context.Context, userID model.UserID, difficulty model.Difficulty) (*model.GridGame, error) {
	played, _, err := c.entitlements.HasPlayedToday(ctx, userID, model.GameKindNumberGrid)
	if err != nil {
		return nil, err
	}
	paid := false
	if played {
		if err := c.entitlements.ConsumeTicket(ctx, userID); err != nil {
			return nil, err
		}
		paid = true
	}

	game := &model.GridGame{
		ID:         gameid.New(c.random, model.GameKindNumberGrid),
		UserID:     userID,
		Grid:       c.service.GeneratePuzzle(difficulty),
		Difficulty: difficulty,
		Paid:       paid,
		StartedAt:  c.clock.Now(),
	}

	c.logger.Info("grid game started",
		slog.String("game_id", string(game.ID)),
		slog.String("user_id", string(userID)),
		slog.String("difficulty", string(difficulty)),
		slog.Bool("paid", paid),
	)

	return game, nil
}

// PlaceNumber writes a digit into a cell, recording the move for undo.
// In pencil mode the digit toggles as a note instead. Rule-invalid
// placements are applied but flagged and counted as errors.
func (c *Controller) PlaceNumber(ctx context.Context, game *model.GridGame, row, col, num int) error {
	if game.Complete {
		return model.ErrGameFinished
	}
	if !model.InBounds(row, col) {
		return model.ErrInvalidPosition
	}
	if num < 1 || num > model.GridSize {
		return model.ErrInvalidDigit
	}

	cell := &game.Grid.Cells[row][col]
	if cell.IsOriginal {
		return model.ErrOriginalCell
	}

	if game.PencilMode {
		toggleNote(cell, num)
		return nil
	}

	game.History = append(game.History, model.Move{
		Row:           row,
		Col:           col,
		PreviousValue: cell.Value,
		NewValue:      num,
		At:            c.clock.Now(),
	})
	game.RedoStack = nil

	cell.Value = num
	cell.Notes = nil
	cell.IsValid = c.service.IsValidPlacement(game.Grid.Values(), row, col, num)
	if !cell.IsValid {
		game.Errors++
	}

	c.checkCompletion(ctx, game)
	return nil
}

// ClearCell empties a player-filled cell, recording the move for undo
func (c *Controller) ClearCell(ctx context.Context, game *model.GridGame, row, col int) error {
	if game.Complete {
		return model.ErrGameFinished
	}
	if !model.InBounds(row, col) {
		return model.ErrInvalidPosition
	}

	cell := &game.Grid.Cells[row][col]
	if cell.IsOriginal {
		return model.ErrOriginalCell
	}

	game.History = append(game.History, model.Move{
		Row:           row,
		Col:           col,
		PreviousValue: cell.Value,
		NewValue:      0,
		At:            c.clock.Now(),
	})
	game.RedoStack = nil

	cell.Value = 0
	cell.IsValid = true
	cell.Notes = nil
	return nil
}

// TogglePencilMode flips between value entry and note entry
func (c *Controller) TogglePencilMode(game *model.GridGame) {
	game.PencilMode = !game.PencilMode
}

// Undo reverts the most recent move
func (c *Controller) Undo(game *model.GridGame) error {
	if game.Complete {
		return model.ErrGameFinished
	}
	if len(game.History) == 0 {
		return model.ErrNothingToUndo
	}

	move := game.History[len(game.History)-1]
	game.History = game.History[:len(game.History)-1]
	game.RedoStack = append(game.RedoStack, move)

	c.applyValue(game, move.Row, move.Col, move.PreviousValue)
	return nil
}

// Redo re-applies the most recently undone move
func (c *Controller) Redo(game *model.GridGame) error {
	if game.Complete {
		return model.ErrGameFinished
	}
	if len(game.RedoStack) == 0 {
		return model.ErrNothingToRedo
	}

	move := game.RedoStack[len(game.RedoStack)-1]
	game.RedoStack = game.RedoStack[:len(game.RedoStack)-1]
	game.History = append(game.History, move)

	c.applyValue(game, move.Row, move.Col, move.NewValue)
	return nil
}

// applyValue writes a value during undo/redo and recomputes its validity
func (c *Controller) applyValue(game *model.GridGame, row, col, value int) {
	cell := &game.Grid.Cells[row][col]
	cell.Value = value
	if value != 0 {
		cell.IsValid = c.service.IsValidPlacement(game.Grid.Values(), row, col, value)
	} else {
		cell.IsValid = true
	}
}

// UseHint reveals one random empty cell from the solution. The user's
// point balance must cover the hint cost; the revealed cell becomes
// part of the original clue set.
func (c *Controller) UseHint(ctx context.Context, game *model.GridGame) (*Hint, error) {
	if game.Complete {
		return nil, model.ErrGameFinished
	}

	balance, err := c.entitlements.Points(ctx, game.UserID)
	if err != nil {
		return nil, err
	}
	if balance < hintCost {
		return nil, model.ErrInsufficientPoints
	}

	hint := c.service.Hint(game.Grid.Values(), game.Grid.Solution)
	if hint == nil {
		return nil, model.ErrNoHintAvailable
	}

	if err := c.entitlements.DeductPoints(ctx, game.UserID, hintCost); err != nil {
		return nil, err
	}

	cell := &game.Grid.Cells[hint.Row][hint.Col]
	cell.Value = hint.Value
	cell.IsValid = true
	cell.IsOriginal = true
	cell.Notes = nil
	game.HintsUsed++

	c.logger.Info("hint used",
		slog.String("game_id", string(game.ID)),
		slog.Int("hints_used", game.HintsUsed),
	)

	c.checkCompletion(ctx, game)
	return hint, nil
}

// Abandon discards an unfinished session, refunding the ticket of a
// paid game that never completed
func (c *Controller) Abandon(ctx context.Context, game *model.GridGame) error {
	if game.Complete || !game.Paid {
		return nil
	}
	if err := c.entitlements.RefundTicket(ctx, game.UserID); err != nil {
		c.logger.Error("failed to refund ticket",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	c.logger.Info("grid game abandoned, ticket refunded",
		slog.String("game_id", string(game.ID)),
	)
	return nil
}

// checkCompletion finishes the session once every cell is filled
func (c *Controller) checkCompletion(ctx context.Context, game *model.GridGame) {
	values := game.Grid.Values()
	if game.Grid.EmptyCount() > 0 {
		return
	}

	game.Complete = true
	game.EndedAt = c.clock.Now()
	game.Solved = c.service.IsSolved(values, game.Grid.Solution)

	c.finish(ctx, game)
}

// finish computes the final score and persists the outcome; failures
// are logged and swallowed
func (c *Controller) finish(ctx context.Context, game *model.GridGame) {
	elapsed := int(game.EndedAt.Sub(game.StartedAt).Seconds())

	score := 0
	if game.Solved {
		score = FinalScore(game.Difficulty, game.Errors, game.HintsUsed, elapsed)
	}

	result := &model.GameResult{
		ID:          game.ID,
		UserID:      game.UserID,
		Kind:        model.GameKindNumberGrid,
		Score:       score,
		Won:         game.Solved,
		Completed:   true,
		Errors:      game.Errors,
		HintsUsed:   game.HintsUsed,
		TimeSeconds: elapsed,
		Day:         model.DayKey(game.EndedAt),
		PlayedAt:    game.EndedAt,
	}

	if err := c.storage.SaveGameResult(ctx, result); err != nil {
		c.logger.Error("failed to save grid result",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return
	}

	if score > 0 {
		if err := c.entitlements.AddPoints(ctx, game.UserID, score); err != nil {
			c.logger.Error("failed to credit points",
				slog.String("game_id", string(game.ID)),
				slog.String("error", err.Error()),
			)
		}
	}

	c.logger.Info("grid game finished",
		slog.String("game_id", string(game.ID)),
		slog.Bool("solved", game.Solved),
		slog.Int("score", score),
		slog.Int("errors", game.Errors),
		slog.Int("hints", game.HintsUsed),
	)
}

// FinalScore is the completion formula: base points for the difficulty,
// minus 2 per error and 5 per hint, plus a time bonus that decays one
// point per elapsed minute
func FinalScore(difficulty model.Difficulty, errors, hints, elapsedSeconds int) int {
	base := basePoints[difficulty]
	bonus := timeBonusStart[difficulty] - elapsedSeconds/60
	if bonus < 0 {
		bonus = 0
	}

	score := base - errors*2 - hints*hintCost + bonus
	if score < 0 {
		return 0
	}
	return score
}

// toggleNote adds or removes a pencil note on an empty cell
func toggleNote(cell *model.Cell, num int) {
	if cell.Value != 0 {
		return
	}
	for i, n := range cell.Notes {
		if n == num {
			cell.Notes = append(cell.Notes[:i], cell.Notes[i+1:]...)
			return
		}
	}
	cell.Notes = append(cell.Notes, num)
	for i := len(cell.Notes) - 1; i > 0 && cell.Notes[i] < cell.Notes[i-1]; i-- {
		cell.Notes[i], cell.Notes[i-1] = cell.Notes[i-1], cell.Notes[i]
	}
}
