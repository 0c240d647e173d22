package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sorteoplay/minigames-go/internal/api/handler"
	"github.com/sorteoplay/minigames-go/internal/api/middleware"
	"github.com/sorteoplay/minigames-go/internal/services/entitlement"
	"github.com/sorteoplay/minigames-go/internal/services/grid"
	"github.com/sorteoplay/minigames-go/internal/services/words"
	"github.com/sorteoplay/minigames-go/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	GridService  *grid.Service
	WordsService *words.Service
	Entitlements *entitlement.Service
	Storage      storage.Storage
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	puzzleHandler := handler.NewPuzzleHandler(cfg.GridService)
	wordsHandler := handler.NewWordsHandler(cfg.WordsService)
	profileHandler := handler.NewProfileHandler(cfg.Entitlements, cfg.Storage)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Puzzle routes
	api.HandleFunc("/puzzles", puzzleHandler.Generate).Methods(http.MethodPost)
	api.HandleFunc("/puzzles/solve", puzzleHandler.Solve).Methods(http.MethodPost)

	// Daily word routes
	api.HandleFunc("/words/today", wordsHandler.GetToday).Methods(http.MethodGet)
	api.HandleFunc("/words", wordsHandler.Schedule).Methods(http.MethodPut)

	// Profile and result routes
	api.HandleFunc("/users/{user_id}/profile", profileHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/users/{user_id}/tickets", profileHandler.GrantTickets).Methods(http.MethodPost)
	api.HandleFunc("/users/{user_id}/results/today", profileHandler.GetTodayResult).Methods(http.MethodGet)
	api.HandleFunc("/results/{game_id}", profileHandler.GetResult).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
