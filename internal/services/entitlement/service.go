package entitlement

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sorteoplay/minigames-go/internal/dependencies/clock"
	"github.com/sorteoplay/minigames-go/internal/model"
	"github.com/sorteoplay/minigames-go/internal/storage"
)

// Service manages the free-daily-game check and the user's ticket and
// points balances
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new entitlement Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// GetOrCreateProfile fetches a user's profile, creating an empty one on
// first contact
func (s *Service) GetOrCreateProfile(ctx context.Context, userID model.UserID) (*model.Profile, error) {
	profile, err := s.storage.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, model.ErrProfileNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	profile = &model.Profile{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile created", slog.String("user_id", string(userID)))
	return profile, nil
}

// HasPlayedToday reports whether the user already finished a game of the
// given kind today, returning the prior result when one exists
func (s *Service) HasPlayedToday(ctx context.Context, userID model.UserID, kind model.GameKind) (bool, *model.GameResult, error) {
	day := model.DayKey(s.clock.Now())
	result, err := s.storage.GetGameResultForDay(ctx, userID, kind, day)
	if err != nil {
		if errors.Is(err, model.ErrResultNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}
	return true, result, nil
}

// ConsumeTicket spends one ticket for a paid replay
func (s *Service) ConsumeTicket(ctx context.Context, userID model.UserID) error {
	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return err
	}

	if profile.TicketsAvailable <= 0 {
		return model.ErrNoTicketsAvailable
	}

	profile.TicketsAvailable--
	profile.TicketsUsed++
	profile.UpdatedAt = s.clock.Now()
	return s.storage.SaveProfile(ctx, profile)
}

// RefundTicket returns a consumed ticket, used when a paid session is
// abandoned before completion
func (s *Service) RefundTicket(ctx context.Context, userID model.UserID) error {
	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return err
	}

	if profile.TicketsUsed <= 0 {
		return nil
	}

	profile.TicketsAvailable++
	profile.TicketsUsed--
	profile.UpdatedAt = s.clock.Now()
	return s.storage.SaveProfile(ctx, profile)
}

// GrantTickets credits purchased tickets to the user
func (s *Service) GrantTickets(ctx context.Context, userID model.UserID, count int) error {
	if count <= 0 {
		return nil
	}

	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return err
	}

	profile.TicketsAvailable += count
	profile.UpdatedAt = s.clock.Now()
	return s.storage.SaveProfile(ctx, profile)
}

// Points returns the user's current point balance
func (s *Service) Points(ctx context.Context, userID model.UserID) (int, error) {
	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return 0, err
	}
	return profile.Points, nil
}

// AddPoints credits points earned from a finished game
func (s *Service) AddPoints(ctx context.Context, userID model.UserID, amount int) error {
	if amount <= 0 {
		return nil
	}

	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return err
	}

	profile.Points += amount
	profile.UpdatedAt = s.clock.Now()
	return s.storage.SaveProfile(ctx, profile)
}

// DeductPoints spends points, failing without mutation when the balance
// does not cover the amount
func (s *Service) DeductPoints(ctx context.Context, userID model.UserID, amount int) error {
	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return err
	}

	if profile.Points < amount {
		return model.ErrInsufficientPoints
	}

	profile.Points -= amount
	profile.UpdatedAt = s.clock.Now()
	return s.storage.SaveProfile(ctx, profile)
}

// Interface for dependency injection
type ServiceInterface interface {
	GetOrCreateProfile(ctx context.Context, userID model.UserID) (*model.Profile, error)
	HasPlayedToday(ctx context.Context, userID model.UserID, kind model.GameKind) (bool, *model.GameResult, error)
	ConsumeTicket(ctx context.Context, userID model.UserID) error
	RefundTicket(ctx context.Context, userID model.UserID) error
	GrantTickets(ctx context.Context, userID model.UserID, count int) error
	Points(ctx context.Context, userID model.UserID) (int, error)
	AddPoints(ctx context.Context, userID model.UserID, amount int) error
	DeductPoints(ctx context.Context, userID model.UserID, amount int) error
}

var _ ServiceInterface = (*Service)(nil)
