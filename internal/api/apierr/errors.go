package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sorteoplay/minigames-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeProfileNotFound    = "PROFILE_NOT_FOUND"
	CodeResultNotFound     = "RESULT_NOT_FOUND"
	CodeDailyWordNotFound  = "DAILY_WORD_NOT_FOUND"
	CodeNoTicketsAvailable = "NO_TICKETS_AVAILABLE"
	CodeInsufficientPoints = "INSUFFICIENT_POINTS"
	CodeUnsolvablePuzzle   = "UNSOLVABLE_PUZZLE"
	CodeInvalidDifficulty  = "INVALID_DIFFICULTY"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrProfileNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeProfileNotFound, "Profile not found"}}
	case errors.Is(err, model.ErrResultNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeResultNotFound, "Game result not found"}}
	case errors.Is(err, model.ErrDailyWordNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeDailyWordNotFound, "No word scheduled for that date"}}
	case errors.Is(err, model.ErrNoTicketsAvailable):
		return &httpError{http.StatusConflict, APIError{CodeNoTicketsAvailable, "No tickets available"}}
	case errors.Is(err, model.ErrInsufficientPoints):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPoints, "Not enough points"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnsolvableError creates an error for puzzles with no completion
func NewUnsolvableError() error {
	return &httpError{http.StatusUnprocessableEntity, APIError{CodeUnsolvablePuzzle, "Puzzle has no solution"}}
}

// NewInvalidDifficultyError creates an error for unknown difficulty values
func NewInvalidDifficultyError() error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidDifficulty, "Difficulty must be easy, medium or hard"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
