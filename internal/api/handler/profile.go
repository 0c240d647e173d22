package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sorteoplay/minigames-go/internal/api/request"
	"github.com/sorteoplay/minigames-go/internal/api/response"
	"github.com/sorteoplay/minigames-go/internal/model"
	"github.com/sorteoplay/minigames-go/internal/services/entitlement"
	"github.com/sorteoplay/minigames-go/internal/storage"
)

// ProfileHandler handles profile and result endpoints
type ProfileHandler struct {
	entitlements *entitlement.Service
	storage      storage.Storage
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(entitlements *entitlement.Service, storage storage.Storage) *ProfileHandler {
	return &ProfileHandler{
		entitlements: entitlements,
		storage:      storage,
	}
}

// Get handles GET /api/v1/users/{user_id}/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := model.UserID(mux.Vars(r)["user_id"])

	profile, err := h.entitlements.GetOrCreateProfile(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(profile))
}

// GrantTickets handles POST /api/v1/users/{user_id}/tickets
func (h *ProfileHandler) GrantTickets(w http.ResponseWriter, r *http.Request) {
	userID := model.UserID(mux.Vars(r)["user_id"])

	var req request.GrantTicketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Count <= 0 {
		WriteError(w, NewInvalidRequestError("count must be positive"))
		return
	}

	if err := h.entitlements.GrantTickets(r.Context(), userID, req.Count); err != nil {
		WriteError(w, err)
		return
	}

	profile, err := h.entitlements.GetOrCreateProfile(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(profile))
}

// GetTodayResult handles GET /api/v1/users/{user_id}/results/today?kind=trivia
func (h *ProfileHandler) GetTodayResult(w http.ResponseWriter, r *http.Request) {
	userID := model.UserID(mux.Vars(r)["user_id"])

	kind, err := gameKind(r.URL.Query().Get("kind"))
	if err != nil {
		WriteError(w, err)
		return
	}

	played, result, err := h.entitlements.HasPlayedToday(r.Context(), userID, kind)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !played {
		WriteError(w, model.ErrResultNotFound)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResultFromModel(result))
}

// GetResult handles GET /api/v1/results/{game_id}
func (h *ProfileHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	result, err := h.storage.GetGameResult(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResultFromModel(result))
}

// gameKind validates a game kind query parameter
func gameKind(raw string) (model.GameKind, error) {
	switch kind := model.GameKind(raw); kind {
	case model.GameKindNumberGrid, model.GameKindWordGuess, model.GameKindHangman, model.GameKindTrivia:
		return kind, nil
	default:
		return "", NewInvalidRequestError("kind must be numbergrid, wordguess, hangman or trivia")
	}
}
