package repository

import (
	"context"

	"reminder-ai/internal/chat"
)

// Repository persists conversation histories.
type Repository interface {
	// GetConversation returns the turns of a conversation, oldest first.
	// An unknown id yields an empty slice and no error.
	GetConversation(ctx context.Context, id string) ([]chat.ConversationTurn, error)
	// SaveConversation writes the full turn list for a conversation,
	// creating the record when it does not exist.
	SaveConversation(ctx context.Context, opts SaveConversationOptions) error
}
