package memory

import (
	"context"
	"sync"

	"github.com/sorteoplay/minigames-go/internal/model"
	"github.com/sorteoplay/minigames-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	profiles   map[model.UserID]*model.Profile
	results    map[model.GameID]*model.GameResult
	dayIndex   map[dayKey]model.GameID
	dailyWords map[wordKey]*model.DailyWord
}

type dayKey struct {
	userID model.UserID
	kind   model.GameKind
	day    string
}

type wordKey struct {
	kind model.GameKind
	date string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		profiles:   make(map[model.UserID]*model.Profile),
		results:    make(map[model.GameID]*model.GameResult),
		dayIndex:   make(map[dayKey]model.GameID),
		dailyWords: make(map[wordKey]*model.DailyWord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = profile
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, id model.UserID) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[id]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

func (s *Storage) DeleteProfile(ctx context.Context, id model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, id)
	return nil
}

// Game result operations

func (s *Storage) SaveGameResult(ctx context.Context, result *model.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.ID] = result
	s.dayIndex[dayKey{result.UserID, result.Kind, result.Day}] = result.ID
	return nil
}

func (s *Storage) GetGameResult(ctx context.Context, id model.GameID) (*model.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[id]
	if !ok {
		return nil, model.ErrResultNotFound
	}
	return result, nil
}

func (s *Storage) GetGameResultForDay(ctx context.Context, userID model.UserID, kind model.GameKind, day string) (*model.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.dayIndex[dayKey{userID, kind, day}]
	if !ok {
		return nil, model.ErrResultNotFound
	}
	result, ok := s.results[id]
	if !ok {
		return nil, model.ErrResultNotFound
	}
	return result, nil
}

// Daily word operations

func (s *Storage) SaveDailyWord(ctx context.Context, word *model.DailyWord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dailyWords[wordKey{word.Kind, word.Date}] = word
	return nil
}

func (s *Storage) GetDailyWord(ctx context.Context, kind model.GameKind, date string) (*model.DailyWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	word, ok := s.dailyWords[wordKey{kind, date}]
	if !ok {
		return nil, model.ErrDailyWordNotFound
	}
	return word, nil
}
