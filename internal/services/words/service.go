package words

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/sorteoplay/minigames-go/internal/dependencies/clock"
	"github.com/sorteoplay/minigames-go/internal/model"
	"github.com/sorteoplay/minigames-go/internal/storage"
)

// guessWords is the built-in fallback pool for the word-guessing game;
// every entry is exactly five letters
var guessWords = []string{
	"PLAYA", "GATOS", "LIBRO", "NOCHE", "MUNDO",
	"QUESO", "RADIO", "PIANO", "CIELO", "BRAVO",
	"TIGRE", "ARENA", "SANTO", "FUEGO", "COCHE",
	"MANGO", "SOLAR", "DANZA", "BRISA", "GRUPO",
}

// hangmanEntry is a built-in hangman word with its hint and category
type hangmanEntry struct {
	word     string
	hint     string
	category string
}

var hangmanWords = []hangmanEntry{
	{"PROGRAMACION", "Actividad de escribir código", "Tecnología"},
	{"ELEFANTE", "Animal grande con trompa", "Animales"},
	{"GUITARRA", "Instrumento de cuerdas", "Música"},
	{"CHOCOLATE", "Dulce hecho de cacao", "Comida"},
	{"MONTAÑA", "Elevación natural del terreno", "Geografía"},
	{"COMPUTADORA", "Máquina para procesar información", "Tecnología"},
	{"BIBLIOTECA", "Lugar con muchos libros", "Cultura"},
	{"DINOSAURIO", "Reptil prehistórico extinto", "Historia"},
	{"ASTRONAUTA", "Viajero del espacio", "Ciencia"},
	{"MARIPOSA", "Insecto con alas coloridas", "Naturaleza"},
}

// Service provides the secret word assigned to each date for the
// word-guessing and hangman games. Words come from storage when one has
// been scheduled for the date, falling back to a built-in rotation.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new words Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// DailyWord returns today's word for the given game kind. A storage miss
// or failure falls back to the built-in pool so gameplay never blocks on
// the word schedule.
func (s *Service) DailyWord(ctx context.Context, kind model.GameKind) (*model.DailyWord, error) {
	now := s.clock.Now()
	date := model.DayKey(now)

	word, err := s.storage.GetDailyWord(ctx, kind, date)
	if err == nil {
		return word, nil
	}
	if !errors.Is(err, model.ErrDailyWordNotFound) {
		s.logger.Warn("daily word lookup failed, using fallback",
			slog.String("kind", string(kind)),
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
	}

	return s.fallbackWord(kind, date, now.Day())
}

// fallbackWord picks the built-in word for the date by day-of-month rotation
func (s *Service) fallbackWord(kind model.GameKind, date string, dayOfMonth int) (*model.DailyWord, error) {
	switch kind {
	case model.GameKindWordGuess:
		w := guessWords[dayOfMonth%len(guessWords)]
		return &model.DailyWord{
			ID:         fmt.Sprintf("local-%s", date),
			Kind:       kind,
			Word:       w,
			Date:       date,
			Difficulty: "medium",
			Category:   "General",
		}, nil
	case model.GameKindHangman:
		entry := hangmanWords[dayOfMonth%len(hangmanWords)]
		return &model.DailyWord{
			ID:         fmt.Sprintf("local-%s", date),
			Kind:       kind,
			Word:       entry.word,
			Hint:       entry.hint,
			Category:   entry.category,
			Date:       date,
			Difficulty: difficultyForLength(entry.word),
		}, nil
	default:
		return nil, model.ErrDailyWordNotFound
	}
}

// difficultyForLength buckets hangman words by letter count
func difficultyForLength(word string) string {
	length := utf8.RuneCountInString(word)
	switch {
	case length <= 6:
		return "easy"
	case length <= 9:
		return "medium"
	default:
		return "hard"
	}
}

// ScheduleWord stores a word for a future date, overriding the fallback
// rotation. Difficulty defaults from word length when unset.
func (s *Service) ScheduleWord(ctx context.Context, word *model.DailyWord) error {
	if word.Difficulty == "" {
		word.Difficulty = difficultyForLength(word.Word)
	}
	return s.storage.SaveDailyWord(ctx, word)
}

// Interface for dependency injection
type ServiceInterface interface {
	DailyWord(ctx context.Context, kind model.GameKind) (*model.DailyWord, error)
	ScheduleWord(ctx context.Context, word *model.DailyWord) error
}

var _ ServiceInterface = (*Service)(nil)
