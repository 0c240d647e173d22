package model

import "errors"

// Common errors used across the application
var (
	// Profile / entitlement errors
	ErrProfileNotFound    = errors.New("profile not found")
	ErrNoTicketsAvailable = errors.New("no tickets available")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrAlreadyPlayedToday = errors.New("free game already played today")

	// Result errors
	ErrResultNotFound = errors.New("game result not found")

	// Daily word errors
	ErrDailyWordNotFound = errors.New("daily word not found")

	// Shared game errors
	ErrGameFinished   = errors.New("game is already finished")
	ErrGameNotStarted = errors.New("game has not been started")

	// Grid game errors
	ErrInvalidPosition = errors.New("invalid grid position")
	ErrInvalidDigit    = errors.New("digit must be between 1 and 9")
	ErrOriginalCell    = errors.New("cell is part of the original puzzle")
	ErrNoHintAvailable = errors.New("no empty cells remain for a hint")
	ErrNothingToUndo   = errors.New("no moves to undo")
	ErrNothingToRedo   = errors.New("no moves to redo")

	// Word guess errors
	ErrInvalidWordLength = errors.New("guess has the wrong length")
	ErrInvalidWord       = errors.New("guess contains invalid characters")

	// Hangman errors
	ErrInvalidLetter        = errors.New("invalid letter")
	ErrLetterAlreadyGuessed = errors.New("letter was already guessed")

	// Trivia errors
	ErrNoCurrentQuestion = errors.New("no question is currently loaded")
	ErrSkipUnaffordable  = errors.New("not enough points to skip")
	ErrAdvancePending    = errors.New("answer reveal still in progress")
)
