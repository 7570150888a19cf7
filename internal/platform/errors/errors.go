package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrNoActiveDeck        = errors.New("no active deck")
	ErrNothingToUndo       = errors.New("nothing to undo")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrLocationUnavailable = errors.New("location unavailable")
)
