package router

// Intent is the routing decision for an incoming message.
type Intent string

const (
	// IntentReminder routes the message through the reminder tool pipeline.
	IntentReminder Intent = "reminder"
	// IntentGeneral routes the message to plain conversation.
	IntentGeneral Intent = "general"
)
