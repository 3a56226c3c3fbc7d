package usecase

import (
	"sort"

	"reminder-ai/internal/reminder"
)

// sortReminders orders by date ascending, then priority rank descending,
// then id ascending as a stable tiebreak.
func sortReminders(reminders []reminder.Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		if reminders[i].Date != reminders[j].Date {
			return reminders[i].Date < reminders[j].Date
		}
		ri, rj := reminder.PriorityRank(reminders[i].Priority), reminder.PriorityRank(reminders[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return reminders[i].ID < reminders[j].ID
	})
}

// priorityGlyph maps a priority to its list marker.
func priorityGlyph(priority string) string {
	switch priority {
	case reminder.PriorityHigh:
		return "🔴"
	case reminder.PriorityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}
