package usecase

import (
	"context"
	"errors"
	"fmt"

	"reminder-ai/internal/agent"
	"reminder-ai/internal/reminder"
)

const (
	replyMissingMessage = "What would you like me to remind you about? Please include both a task and a date."
	replyMissingDate    = "When should I remind you? Please include a date for the reminder."
	replyMissingID      = "Please tell me the ID of the reminder."
	replyReminderError  = "I'm sorry, something went wrong while handling your reminders. Please try again."
)

// dispatch maps a canonical operation request onto the reminder use case and
// produces the user-facing reply. It never returns an error: every failure
// becomes reply text.
func (uc *implUseCase) dispatch(ctx context.Context, req agent.OperationRequest) string {
	switch req.Operation {
	case agent.OperationAddReminder:
		return uc.dispatchAdd(ctx, req.Args)

	case agent.OperationGetReminders:
		out, err := uc.reminderUC.List(ctx, reminder.ListInput{
			Date:      req.Args.String("date"),
			Completed: req.Args.Bool("completed"),
		})
		if err != nil {
			uc.l.Errorf(ctx, "chat.usecase.dispatch: list: %v", err)
			return replyReminderError
		}
		return out.Reply

	case agent.OperationCompleteReminder:
		id, ok := req.Args.Int64("reminder_id")
		if !ok {
			return replyMissingID
		}
		out, err := uc.reminderUC.Complete(ctx, id)
		if err != nil {
			return uc.replyForIDError(ctx, id, err)
		}
		return out.Reply

	case agent.OperationDeleteReminder:
		id, ok := req.Args.Int64("reminder_id")
		if !ok {
			return replyMissingID
		}
		out, err := uc.reminderUC.Delete(ctx, id)
		if err != nil {
			return uc.replyForIDError(ctx, id, err)
		}
		return out.Reply

	case agent.OperationGetUpcomingReminders:
		out, err := uc.reminderUC.Upcoming(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "chat.usecase.dispatch: upcoming: %v", err)
			return replyReminderError
		}
		return out.Reply

	default:
		if req.Text != "" {
			return req.Text
		}
		return replyNoText
	}
}

func (uc *implUseCase) dispatchAdd(ctx context.Context, args agent.Args) string {
	message := args.String("message")
	date := args.String("date")
	if message == "" {
		return replyMissingMessage
	}
	if date == "" {
		return replyMissingDate
	}

	out, err := uc.reminderUC.Create(ctx, reminder.CreateInput{
		Message:  message,
		Date:     date,
		Priority: args.String("priority"),
		Tags:     args.StringSlice("tags"),
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.dispatchAdd: %v", err)
		return replyReminderError
	}
	return out.Reply
}

func (uc *implUseCase) replyForIDError(ctx context.Context, id int64, err error) string {
	if errors.Is(err, reminder.ErrReminderNotFound) {
		return fmt.Sprintf("Reminder with ID %d not found", id)
	}
	uc.l.Errorf(ctx, "chat.usecase.dispatch: reminder %d: %v", id, err)
	return replyReminderError
}
