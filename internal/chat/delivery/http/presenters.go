package http

import (
	"reminder-ai/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversation_id"`
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		ConversationID: r.ConversationID,
		Message:        r.Message,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Reply          string `json:"reply"`
	ConversationID string `json:"conversation_id"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Reply:          out.Reply,
		ConversationID: out.ConversationID,
	}
}

type turnResp struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type conversationResp struct {
	ConversationID string     `json:"conversation_id"`
	Messages       []turnResp `json:"messages"`
}

func (h *handler) newConversationResp(out chat.HistoryOutput) conversationResp {
	messages := make([]turnResp, len(out.Turns))
	for i, turn := range out.Turns {
		messages[i] = turnResp{
			Role:      turn.Role,
			Content:   turn.Content,
			Timestamp: turn.Timestamp,
		}
	}
	return conversationResp{
		ConversationID: out.ConversationID,
		Messages:       messages,
	}
}
