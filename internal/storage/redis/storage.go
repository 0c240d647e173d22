package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sorteoplay/minigames-go/internal/model"
	"github.com/sorteoplay/minigames-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, profileKey(profile.UserID), data, 0).Err()
}

func (s *Storage) GetProfile(ctx context.Context, id model.UserID) (*model.Profile, error) {
	data, err := s.client.Get(ctx, profileKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProfileNotFound
		}
		return nil, err
	}

	var profile model.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Storage) DeleteProfile(ctx context.Context, id model.UserID) error {
	return s.client.Del(ctx, profileKey(id)).Err()
}

// Game result operations

func (s *Storage) SaveGameResult(ctx context.Context, result *model.GameResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + day index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, resultKey(result.ID), data, s.cfg.GameResultTTL)
	pipe.Set(ctx, resultDayIndexKey(result.UserID, result.Kind, result.Day), string(result.ID), s.cfg.GameResultTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGameResult(ctx context.Context, id model.GameID) (*model.GameResult, error) {
	data, err := s.client.Get(ctx, resultKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrResultNotFound
		}
		return nil, err
	}

	var result model.GameResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Storage) GetGameResultForDay(ctx context.Context, userID model.UserID, kind model.GameKind, day string) (*model.GameResult, error) {
	idStr, err := s.client.Get(ctx, resultDayIndexKey(userID, kind, day)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrResultNotFound
		}
		return nil, err
	}

	return s.GetGameResult(ctx, model.GameID(idStr))
}

// Daily word operations

func (s *Storage) SaveDailyWord(ctx context.Context, word *model.DailyWord) error {
	data, err := json.Marshal(word)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, dailyWordKey(word.Kind, word.Date), data, s.cfg.DailyWordTTL).Err()
}

func (s *Storage) GetDailyWord(ctx context.Context, kind model.GameKind, date string) (*model.DailyWord, error) {
	data, err := s.client.Get(ctx, dailyWordKey(kind, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrDailyWordNotFound
		}
		return nil, err
	}

	var word model.DailyWord
	if err := json.Unmarshal(data, &word); err != nil {
		return nil, err
	}
	return &word, nil
}
