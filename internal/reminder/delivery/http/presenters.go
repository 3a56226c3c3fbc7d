package http

import (
	"reminder-ai/internal/reminder"
)

// --- Request DTOs ---

type createReq struct {
	Message  string   `json:"message"  binding:"required"`
	Date     string   `json:"date"     binding:"required"`
	Priority string   `json:"priority" binding:"omitempty,oneof=low normal medium high"`
	Tags     []string `json:"tags"`
}

func (r createReq) toInput() reminder.CreateInput {
	return reminder.CreateInput{
		Message:  r.Message,
		Date:     r.Date,
		Priority: r.Priority,
		Tags:     r.Tags,
	}
}

type listReq struct {
	Date      string `form:"date"`
	Completed bool   `form:"completed"`
}

func (r listReq) toInput() reminder.ListInput {
	return reminder.ListInput{
		Date:      r.Date,
		Completed: r.Completed,
	}
}

// --- Response DTOs ---

type reminderResp struct {
	ID        int64    `json:"id"`
	Message   string   `json:"message"`
	Date      string   `json:"date"`
	Priority  string   `json:"priority"`
	Tags      []string `json:"tags"`
	Completed bool     `json:"completed"`
}

func newReminderResp(rem reminder.Reminder) reminderResp {
	tags := rem.Tags
	if tags == nil {
		tags = []string{}
	}
	return reminderResp{
		ID:        rem.ID,
		Message:   rem.Message,
		Date:      rem.Date,
		Priority:  rem.Priority,
		Tags:      tags,
		Completed: rem.Completed,
	}
}

type createResp struct {
	Message  string       `json:"message"`
	Reminder reminderResp `json:"reminder"`
}

func (h *handler) newCreateResp(out reminder.CreateOutput) createResp {
	return createResp{
		Message:  out.Reply,
		Reminder: newReminderResp(out.Reminder),
	}
}

type listResp struct {
	Message   string         `json:"message"`
	Reminders []reminderResp `json:"reminders"`
}

func (h *handler) newListResp(message string, reminders []reminder.Reminder) listResp {
	items := make([]reminderResp, len(reminders))
	for i, rem := range reminders {
		items[i] = newReminderResp(rem)
	}
	return listResp{
		Message:   message,
		Reminders: items,
	}
}

type completeResp struct {
	Message  string       `json:"message"`
	Reminder reminderResp `json:"reminder"`
}

func (h *handler) newCompleteResp(out reminder.CompleteOutput) completeResp {
	return completeResp{
		Message:  out.Reply,
		Reminder: newReminderResp(out.Reminder),
	}
}

type deleteResp struct {
	Message string `json:"message"`
}

func (h *handler) newDeleteResp(out reminder.DeleteOutput) deleteResp {
	return deleteResp{Message: out.Reply}
}
