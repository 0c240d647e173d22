package storage

import (
	"context"

	"github.com/sorteoplay/minigames-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Profile operations
	SaveProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, id model.UserID) (*model.Profile, error)
	DeleteProfile(ctx context.Context, id model.UserID) error

	// Game result operations
	SaveGameResult(ctx context.Context, result *model.GameResult) error
	GetGameResult(ctx context.Context, id model.GameID) (*model.GameResult, error)
	GetGameResultForDay(ctx context.Context, userID model.UserID, kind model.GameKind, day string) (*model.GameResult, error)

	// Daily word operations
	SaveDailyWord(ctx context.Context, word *model.DailyWord) error
	GetDailyWord(ctx context.Context, kind model.GameKind, date string) (*model.DailyWord, error)
}
