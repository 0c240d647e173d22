package gameid

import (
	"fmt"

	"github.com/sorteoplay/minigames-go/internal/dependencies/random"
	"github.com/sorteoplay/minigames-go/internal/model"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// New generates a fresh game ID tagged with the game kind
func New(r random.Random, kind model.GameKind) model.GameID {
	return model.GameID(fmt.Sprintf("%s-%s", kind, r.String(12, alphabet)))
}
