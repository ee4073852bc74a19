package errors

import "errors"

var (
	ErrNotFound = errors.New("room not found")

	ErrNameRequired = errors.New("room name is required")
)
