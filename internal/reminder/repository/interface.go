package repository

import (
	"context"

	"reminder-ai/internal/reminder"
)

// Repository defines all data access methods for the Reminder entity.
// Implementations must make each call atomic with respect to concurrent
// callers; last writer wins at single-record granularity.
type Repository interface {
	CreateReminder(ctx context.Context, opt CreateReminderOptions) (reminder.Reminder, error)
	ListReminders(ctx context.Context, opt ListRemindersOptions) ([]reminder.Reminder, error)
	GetOneReminder(ctx context.Context, id int64) (reminder.Reminder, error)
	SetCompleted(ctx context.Context, id int64) error
	DeleteReminder(ctx context.Context, id int64) error
}
