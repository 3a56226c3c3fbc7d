package usecase

import (
	"context"
	"errors"
	"fmt"

	"reminder-ai/internal/reminder"
)

// Complete marks a reminder as completed. Completing an already completed
// reminder is a success and reports AlreadyCompleted; completion is one-way.
func (uc *implUseCase) Complete(ctx context.Context, id int64) (reminder.CompleteOutput, error) {
	rem, err := uc.repo.GetOneReminder(ctx, id)
	if err != nil {
		if !errors.Is(err, reminder.ErrReminderNotFound) {
			uc.l.Errorf(ctx, "uc.Complete GetOneReminder: %v", err)
		}
		return reminder.CompleteOutput{}, err
	}

	if rem.Completed {
		return reminder.CompleteOutput{
			Reminder:         rem,
			AlreadyCompleted: true,
			Reply:            fmt.Sprintf("Reminder '%s' is already completed", rem.Message),
		}, nil
	}

	if err := uc.repo.SetCompleted(ctx, id); err != nil {
		if !errors.Is(err, reminder.ErrReminderNotFound) {
			uc.l.Errorf(ctx, "uc.Complete SetCompleted: %v", err)
		}
		return reminder.CompleteOutput{}, err
	}

	rem.Completed = true
	return reminder.CompleteOutput{
		Reminder: rem,
		Reply:    fmt.Sprintf("✅ Reminder '%s' marked as completed", rem.Message),
	}, nil
}

// Delete removes a reminder permanently. A second delete of the same id
// reports ErrReminderNotFound.
func (uc *implUseCase) Delete(ctx context.Context, id int64) (reminder.DeleteOutput, error) {
	rem, err := uc.repo.GetOneReminder(ctx, id)
	if err != nil {
		if !errors.Is(err, reminder.ErrReminderNotFound) {
			uc.l.Errorf(ctx, "uc.Delete GetOneReminder: %v", err)
		}
		return reminder.DeleteOutput{}, err
	}

	if err := uc.repo.DeleteReminder(ctx, id); err != nil {
		if !errors.Is(err, reminder.ErrReminderNotFound) {
			uc.l.Errorf(ctx, "uc.Delete DeleteReminder: %v", err)
		}
		return reminder.DeleteOutput{}, err
	}

	return reminder.DeleteOutput{
		Reminder: rem,
		Reply:    fmt.Sprintf("🗑️ Reminder '%s' deleted", rem.Message),
	}, nil
}
