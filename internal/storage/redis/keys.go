package redis

import (
	"fmt"

	"github.com/sorteoplay/minigames-go/internal/model"
)

// Key prefix for all platform data
const keyPrefix = "minigames"

// Key generation functions for each entity type

// profileKey returns the Redis key for a Profile
func profileKey(id model.UserID) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, id)
}

// resultKey returns the Redis key for a GameResult
func resultKey(id model.GameID) string {
	return fmt.Sprintf("%s:result:%s", keyPrefix, id)
}

// resultDayIndexKey returns the Redis key for the
// (user, game kind, day) -> game_id index
func resultDayIndexKey(userID model.UserID, kind model.GameKind, day string) string {
	return fmt.Sprintf("%s:idx:result_day:%s:%s:%s", keyPrefix, userID, kind, day)
}

// dailyWordKey returns the Redis key for a DailyWord
func dailyWordKey(kind model.GameKind, date string) string {
	return fmt.Sprintf("%s:daily_word:%s:%s", keyPrefix, kind, date)
}
