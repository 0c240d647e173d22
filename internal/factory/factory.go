package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/sorteoplay/minigames-go/internal/dependencies/clock"
	"github.com/sorteoplay/minigames-go/internal/dependencies/random"
	"github.com/sorteoplay/minigames-go/internal/services/entitlement"
	"github.com/sorteoplay/minigames-go/internal/services/grid"
	"github.com/sorteoplay/minigames-go/internal/services/hangman"
	"github.com/sorteoplay/minigames-go/internal/services/trivia"
	"github.com/sorteoplay/minigames-go/internal/services/wordguess"
	"github.com/sorteoplay/minigames-go/internal/services/words"
	"github.com/sorteoplay/minigames-go/internal/storage"
	"github.com/sorteoplay/minigames-go/internal/storage/memory"
	redisstorage "github.com/sorteoplay/minigames-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	EntitlementService  *entitlement.Service
	WordsService        *words.Service
	GridService         *grid.Service
	GridController      *grid.Controller
	WordGuessService    *wordguess.Service
	WordGuessController *wordguess.Controller
	HangmanService      *hangman.Service
	HangmanController   *hangman.Controller
	TriviaService       *trivia.Service
	TriviaController    *trivia.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// TriviaConfig holds trivia pacing settings (optional)
	// If zero value, defaults to trivia.DefaultConfig()
	TriviaConfig *trivia.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()

	triviaCfg := trivia.DefaultConfig()
	if cfg.TriviaConfig != nil {
		triviaCfg = *cfg.TriviaConfig
	}

	return newWithDependencies(store, clk, rnd, triviaCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, triviaCfg trivia.Config, logger *slog.Logger) *App {
	entitlementService := entitlement.New(store, clk, logger)
	wordsService := words.New(store, clk, logger)

	gridService := grid.New(rnd)
	gridController := grid.NewController(gridService, entitlementService, store, clk, rnd, logger)

	wordGuessService := wordguess.New(clk)
	wordGuessController := wordguess.NewController(wordGuessService, wordsService, entitlementService, store, rnd, logger)

	hangmanService := hangman.New(clk)
	hangmanController := hangman.NewController(hangmanService, wordsService, entitlementService, store, rnd, logger)

	triviaService := trivia.New(clk)
	triviaSource := trivia.NewBankSource(rnd)
	triviaController := trivia.NewController(triviaService, triviaSource, entitlementService, store, rnd, logger, triviaCfg)

	return &App{
		Storage:             store,
		Clock:               clk,
		Random:              rnd,
		EntitlementService:  entitlementService,
		WordsService:        wordsService,
		GridService:         gridService,
		GridController:      gridController,
		WordGuessService:    wordGuessService,
		WordGuessController: wordGuessController,
		HangmanService:      hangmanService,
		HangmanController:   hangmanController,
		TriviaService:       triviaService,
		TriviaController:    triviaController,
	}
}
