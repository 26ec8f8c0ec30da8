package model

import "errors"

// Common errors used across the application
var (
	// Grid errors
	ErrInvalidGridSize   = errors.New("invalid grid size")
	ErrInvalidCoordinate = errors.New("coordinate out of bounds")
	ErrInvalidLetter     = errors.New("invalid letter")
	ErrLetterConflict    = errors.New("cell holds a different letter")
	ErrStateRegression   = errors.New("cell state cannot move backward")
	ErrWordNotFound      = errors.New("word not found")

	// Placement errors
	ErrInvalidPlacement = errors.New("word cannot be placed there")
	ErrInvalidWord      = errors.New("word must be letters A-Z")

	// AI errors
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownStrategy   = errors.New("unknown bot strategy")
	ErrNoGuessAvailable  = errors.New("no legal guess available")

	// Match errors
	ErrMatchOver      = errors.New("match is already over")
	ErrNotPlayerTurn  = errors.New("not this side's turn")
	ErrAlreadyGuessed = errors.New("guess was already made")

	// Storage errors
	ErrSummaryNotFound = errors.New("match summary not found")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrNotEnoughWords      = errors.New("not enough dictionary words")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
)
