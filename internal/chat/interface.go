package chat

import "context"

// UseCase exposes the conversational pipeline.
type UseCase interface {
	// Chat routes the message by intent: reminder-flavored messages go
	// through the tool-calling pipeline, everything else through plain
	// generation.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	// GeneralChat always uses plain generation, regardless of intent.
	GeneralChat(ctx context.Context, input ChatInput) (ChatOutput, error)
	// History returns the stored turns of a conversation, oldest first.
	// Unknown ids yield an empty sequence, not an error.
	History(ctx context.Context, conversationID string) (HistoryOutput, error)
}
