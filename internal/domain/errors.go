package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrIndexOutOfRange is returned when a card index falls outside the board.
	// It indicates a caller bug and is never produced by legal player actions.
	ErrIndexOutOfRange = errors.New("card index out of range")

	// ErrInvalidLayout is returned when a board layout does not contain every
	// pair id exactly twice.
	ErrInvalidLayout = errors.New("invalid board layout")

	// ErrMatchedFaceDown is returned by validation when a matched card is
	// face-down.
	ErrMatchedFaceDown = errors.New("matched card must be face-up")

	// ErrTooManySelected is returned by validation when more than two
	// unmatched cards are face-up at once.
	ErrTooManySelected = errors.New("more than two unmatched cards face-up")
)
