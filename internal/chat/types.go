package chat

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is a single message within a conversation. Timestamp is an
// ISO-8601 string.
type ConversationTurn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type ChatInput struct {
	ConversationID string
	Message        string
}

type ChatOutput struct {
	ConversationID string
	Reply          string
}

type HistoryOutput struct {
	ConversationID string
	Turns          []ConversationTurn
}
