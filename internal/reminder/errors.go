package reminder

import "errors"

var (
	ErrReminderNotFound = errors.New("reminder not found")
	ErrEmptyMessage     = errors.New("reminder message cannot be empty")
	ErrEmptyDate        = errors.New("reminder date cannot be empty")
)
