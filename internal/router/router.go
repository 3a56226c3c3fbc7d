package router

import "strings"

// Classify returns IntentReminder when the lowercased message contains any
// reminder keyword, IntentGeneral otherwise.
func (r *KeywordRouter) Classify(message string) Intent {
	lower := strings.ToLower(message)
	for _, keyword := range reminderKeywords {
		if strings.Contains(lower, keyword) {
			return IntentReminder
		}
	}
	return IntentGeneral
}
