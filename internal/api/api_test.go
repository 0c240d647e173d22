package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorteoplay/minigames-go/internal/api"
	"github.com/sorteoplay/minigames-go/internal/api/apierr"
	"github.com/sorteoplay/minigames-go/internal/api/response"
	"github.com/sorteoplay/minigames-go/internal/factory"
	"github.com/sorteoplay/minigames-go/internal/model"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		GridService:  app.GridService,
		WordsService: app.WordsService,
		Entitlements: app.EntitlementService,
		Storage:      app.Storage,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestGeneratePuzzle(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"difficulty": "easy"}
	rr := ts.request(http.MethodPost, "/api/v1/puzzles", body)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Puzzle
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "easy", resp.Difficulty)
	assert.Equal(t, 40, resp.EmptyCount)
	assert.Len(t, resp.Cells, 9)
	assert.Len(t, resp.Originals, 81-40)
}

func TestGeneratePuzzleDefaultsToMedium(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/puzzles", map[string]string{})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Puzzle
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "medium", resp.Difficulty)
	assert.Equal(t, 50, resp.EmptyCount)
}

func TestGeneratePuzzleInvalidDifficulty(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/puzzles", map[string]string{"difficulty": "impossible"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidDifficulty, errorCode(t, rr))
}

func TestSolvePuzzle(t *testing.T) {
	ts := newTestServer(t)

	// Generate a puzzle and feed its cells back to the solver
	rr := ts.request(http.MethodPost, "/api/v1/puzzles", map[string]string{"difficulty": "medium"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var puzzle response.Puzzle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &puzzle))

	rr = ts.request(http.MethodPost, "/api/v1/puzzles/solve", map[string]any{"cells": puzzle.Cells})
	assert.Equal(t, http.StatusOK, rr.Code)

	var solution response.Solution
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &solution))

	for row := range solution.Cells {
		for col, v := range solution.Cells[row] {
			assert.NotZero(t, v, "row %d col %d", row, col)
			if puzzle.Cells[row][col] != 0 {
				assert.Equal(t, puzzle.Cells[row][col], v)
			}
		}
	}
}

func TestSolvePuzzleUnsolvable(t *testing.T) {
	ts := newTestServer(t)

	// Row 0 holds 1-8 and the column blocks the 9, so (0,8) has no
	// candidate at all
	cells := make([][]int, 9)
	for row := range cells {
		cells[row] = make([]int, 9)
	}
	for col := 0; col < 8; col++ {
		cells[0][col] = col + 1
	}
	cells[1][8] = 9

	rr := ts.request(http.MethodPost, "/api/v1/puzzles/solve", map[string]any{"cells": cells})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, apierr.CodeUnsolvablePuzzle, errorCode(t, rr))
}

func TestSolvePuzzleMalformedGrid(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/puzzles/solve", map[string]any{"cells": [][]int{{1, 2, 3}}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))
}

func TestScheduleAndGetDailyWord(t *testing.T) {
	ts := newTestServer(t)

	today := model.DayKey(ts.app.Clock.Now())
	body := map[string]string{
		"kind":     "hangman",
		"word":     "MURCIELAGO",
		"hint":     "Mamífero volador",
		"category": "Animales",
		"date":     today,
	}
	rr := ts.request(http.MethodPut, "/api/v1/words", body)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/words/today?kind=hangman", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.DailyWord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "MURCIELAGO", resp.Word)
	assert.Equal(t, "Mamífero volador", resp.Hint)
	assert.Equal(t, today, resp.Date)
}

func TestScheduleWordValidation(t *testing.T) {
	ts := newTestServer(t)

	// Unknown kind
	rr := ts.request(http.MethodPut, "/api/v1/words", map[string]string{
		"kind": "trivia", "word": "HOLA", "date": "2024-05-01",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Missing word
	rr = ts.request(http.MethodPut, "/api/v1/words", map[string]string{
		"kind": "wordguess", "date": "2024-05-01",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Bad date format
	rr = ts.request(http.MethodPut, "/api/v1/words", map[string]string{
		"kind": "wordguess", "word": "HOLA", "date": "01/05/2024",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetProfileCreatesOnFirstAccess(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/users/user-1/profile", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.Zero(t, resp.Points)
	assert.Zero(t, resp.TicketsAvailable)
}

func TestGrantTickets(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/users/user-1/tickets", map[string]int{"count": 3})
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TicketsAvailable)

	rr = ts.request(http.MethodPost, "/api/v1/users/user-1/tickets", map[string]int{"count": 0})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetTodayResult(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	rr := ts.request(http.MethodGet, "/api/v1/users/user-1/results/today?kind=wordguess", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeResultNotFound, errorCode(t, rr))

	// Play today's word game to completion; the rotating fallback word
	// means no scheduling is needed
	game, err := ts.app.WordGuessController.StartGame(ctx, "user-1")
	require.NoError(t, err)
	_, err = ts.app.WordGuessController.Submit(ctx, game, game.Secret)
	require.NoError(t, err)
	require.Equal(t, model.StatusWon, game.Status)

	rr = ts.request(http.MethodGet, "/api/v1/users/user-1/results/today?kind=wordguess", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.GameResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "wordguess", resp.Kind)
	assert.True(t, resp.Won)
	assert.NotEmpty(t, resp.ID)

	// The same result is addressable by game ID
	rr = ts.request(http.MethodGet, "/api/v1/results/"+resp.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetTodayResultBadKind(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/users/user-1/results/today?kind=chess", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetResultNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/results/missing-game", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeResultNotFound, errorCode(t, rr))
}
