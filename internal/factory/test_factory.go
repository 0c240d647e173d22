package factory

import (
	"time"

	"github.com/sorteoplay/minigames-go/internal/dependencies/mocks"
	"github.com/sorteoplay/minigames-go/internal/services/trivia"
	"github.com/sorteoplay/minigames-go/internal/storage/memory"
	"github.com/sorteoplay/minigames-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked
// dependencies. Trivia advances synchronously.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	triviaCfg := trivia.Config{AdvanceDelay: 0}
	app := newWithDependencies(store, mockClock, mockRandom, triviaCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
