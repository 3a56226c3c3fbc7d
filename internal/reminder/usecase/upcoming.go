package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"reminder-ai/internal/reminder"
	repo "reminder-ai/internal/reminder/repository"
)

// Upcoming returns uncompleted reminders dated today or tomorrow, labeled
// accordingly.
func (uc *implUseCase) Upcoming(ctx context.Context) (reminder.UpcomingOutput, error) {
	now := time.Now()
	today := uc.dateMath.Today(now)
	tomorrow := uc.dateMath.Tomorrow(now)

	reminders, err := uc.repo.ListReminders(ctx, repo.ListRemindersOptions{
		Completed: false,
		Dates:     []string{today, tomorrow},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upcoming ListReminders: %v", err)
		return reminder.UpcomingOutput{}, err
	}

	sortReminders(reminders)

	if len(reminders) == 0 {
		return reminder.UpcomingOutput{
			Reminders: []reminder.Reminder{},
			Reply:     "No upcoming reminders for today or tomorrow",
		}, nil
	}

	var sb strings.Builder
	sb.WriteString("⏰ Here are your upcoming reminders:\n")
	for _, rem := range reminders {
		day := "Today"
		if rem.Date == tomorrow {
			day = "Tomorrow"
		}
		sb.WriteString(fmt.Sprintf("%s %s: %s\n", priorityGlyph(rem.Priority), day, rem.Message))
	}

	return reminder.UpcomingOutput{Reminders: reminders, Reply: sb.String()}, nil
}
