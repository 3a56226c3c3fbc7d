package usecase

import (
	"context"
	"fmt"
	"time"

	"reminder-ai/internal/reminder"
	repo "reminder-ai/internal/reminder/repository"
)

// Create normalizes the date, applies defaults and persists a new Reminder.
func (uc *implUseCase) Create(ctx context.Context, input reminder.CreateInput) (reminder.CreateOutput, error) {
	if input.Message == "" {
		return reminder.CreateOutput{}, reminder.ErrEmptyMessage
	}
	if input.Date == "" {
		return reminder.CreateOutput{}, reminder.ErrEmptyDate
	}

	priority := input.Priority
	if priority == "" {
		priority = reminder.PriorityNormal
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	date := uc.dateMath.Normalize(input.Date, time.Now())

	rem, err := uc.repo.CreateReminder(ctx, repo.CreateReminderOptions{
		Message:  input.Message,
		Date:     date,
		Priority: priority,
		Tags:     tags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateReminder: %v", err)
		return reminder.CreateOutput{}, err
	}

	return reminder.CreateOutput{
		Reminder: rem,
		Reply:    fmt.Sprintf("✅ Reminder added: %s on %s", rem.Message, rem.Date),
	}, nil
}
