package apperrors

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrEmptySelection       = errors.New("no sessions selected")
	ErrNoSessionURL         = errors.New("session has no url")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)
