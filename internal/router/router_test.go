package router_test

import (
	"testing"

	"reminder-ai/internal/router"
)

func TestClassify(t *testing.T) {
	r := router.New()

	tests := []struct {
		name    string
		message string
		want    router.Intent
	}{
		{"Remind verb", "Remind me to call mom tomorrow", router.IntentReminder},
		{"Reminder noun", "add a reminder for Friday", router.IntentReminder},
		{"Schedule", "schedule a dentist visit", router.IntentReminder},
		{"Task", "I have a new task", router.IntentReminder},
		{"Todo", "add buy milk to my todo", router.IntentReminder},
		{"To-do hyphenated", "update my to-do list", router.IntentReminder},
		{"Show reminders", "show reminders", router.IntentReminder},
		{"Upcoming", "what's upcoming this week?", router.IntentReminder},
		{"Mark as done", "mark as done number 3", router.IntentReminder},
		{"Case insensitive", "REMIND me please", router.IntentReminder},
		{"Keyword inside larger word", "this is a reminderish thing", router.IntentReminder},
		{"Small talk", "how is the weather today?", router.IntentGeneral},
		{"Empty message", "", router.IntentGeneral},
		{"Unrelated question", "tell me a joke", router.IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Classify(tt.message); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}
