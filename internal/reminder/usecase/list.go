package usecase

import (
	"context"
	"fmt"
	"strings"

	"reminder-ai/internal/reminder"
	repo "reminder-ai/internal/reminder/repository"
)

// List returns reminders filtered by completion flag and an optional exact
// date match, ordered by date ascending then priority rank descending.
func (uc *implUseCase) List(ctx context.Context, input reminder.ListInput) (reminder.ListOutput, error) {
	reminders, err := uc.repo.ListReminders(ctx, repo.ListRemindersOptions{
		Completed: input.Completed,
		Date:      input.Date,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListReminders: %v", err)
		return reminder.ListOutput{}, err
	}

	sortReminders(reminders)

	if len(reminders) == 0 {
		reply := "No reminders found"
		if input.Date != "" {
			reply += fmt.Sprintf(" for %s", input.Date)
		}
		return reminder.ListOutput{Reminders: []reminder.Reminder{}, Reply: reply}, nil
	}

	var sb strings.Builder
	sb.WriteString("📅 Here are your reminders:\n")
	for _, rem := range reminders {
		sb.WriteString(fmt.Sprintf("%s %s: %s\n", priorityGlyph(rem.Priority), rem.Date, rem.Message))
	}

	return reminder.ListOutput{Reminders: reminders, Reply: sb.String()}, nil
}
