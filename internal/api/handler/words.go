package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sorteoplay/minigames-go/internal/api/request"
	"github.com/sorteoplay/minigames-go/internal/api/response"
	"github.com/sorteoplay/minigames-go/internal/model"
	"github.com/sorteoplay/minigames-go/internal/services/words"
)

// WordsHandler handles daily word endpoints
type WordsHandler struct {
	wordsService *words.Service
}

// NewWordsHandler creates a new words handler
func NewWordsHandler(wordsService *words.Service) *WordsHandler {
	return &WordsHandler{
		wordsService: wordsService,
	}
}

// GetToday handles GET /api/v1/words/today?kind=wordguess
func (h *WordsHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	kind, err := wordKind(r.URL.Query().Get("kind"))
	if err != nil {
		WriteError(w, err)
		return
	}

	word, err := h.wordsService.DailyWord(r.Context(), kind)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DailyWordFromModel(word))
}

// Schedule handles PUT /api/v1/words
func (h *WordsHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req request.ScheduleWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	kind, err := wordKind(req.Kind)
	if err != nil {
		WriteError(w, err)
		return
	}
	if req.Word == "" {
		WriteError(w, NewInvalidRequestError("word is required"))
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		WriteError(w, NewInvalidRequestError("date must be YYYY-MM-DD"))
		return
	}

	word := &model.DailyWord{
		ID:       string(kind) + "-" + req.Date,
		Kind:     kind,
		Word:     req.Word,
		Hint:     req.Hint,
		Category: req.Category,
		Date:     req.Date,
	}
	if err := h.wordsService.ScheduleWord(r.Context(), word); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.DailyWordFromModel(word))
}

// wordKind validates the word-backed game kinds
func wordKind(raw string) (model.GameKind, error) {
	switch kind := model.GameKind(raw); kind {
	case model.GameKindWordGuess, model.GameKindHangman:
		return kind, nil
	default:
		return "", NewInvalidRequestError("kind must be wordguess or hangman")
	}
}
