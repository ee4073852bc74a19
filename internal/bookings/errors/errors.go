package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrMissingFields = errors.New("date, start time and end time are required")

	ErrInvalidTimeRange = errors.New("start time must precede end time")

	ErrTimeConflict = errors.New("booking time conflicts with an existing booking")
)
