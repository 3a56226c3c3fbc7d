package repository

import "reminder-ai/internal/chat"

type SaveConversationOptions struct {
	ID    string
	Turns []chat.ConversationTurn
}
