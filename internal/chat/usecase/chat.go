package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"reminder-ai/internal/agent"
	"reminder-ai/internal/chat"
	"reminder-ai/internal/chat/repository"
	"reminder-ai/internal/router"
	"reminder-ai/pkg/gemini"
)

const (
	replyUpstreamFailure = "I'm sorry, I'm having trouble processing your request right now. Please try again later."
	replyNoText          = "I'm sorry, I couldn't process your request. Please try rephrasing your message."

	saveTimeout = 10 * time.Second
)

func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	if input.Message == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}

	convID := input.ConversationID
	if convID == "" {
		convID = uuid.NewString()
	}
	history := uc.loadHistory(ctx, convID)

	var reply string
	if uc.router.Classify(input.Message) == router.IntentReminder {
		reply = uc.reminderTurn(ctx, history, input.Message)
	} else {
		reply = uc.generalTurn(ctx, history, input.Message)
	}

	uc.recordTurn(ctx, convID, history, input.Message, reply)

	return chat.ChatOutput{ConversationID: convID, Reply: reply}, nil
}

func (uc *implUseCase) GeneralChat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	if input.Message == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}

	convID := input.ConversationID
	if convID == "" {
		convID = uuid.NewString()
	}
	history := uc.loadHistory(ctx, convID)

	reply := uc.generalTurn(ctx, history, input.Message)
	uc.recordTurn(ctx, convID, history, input.Message, reply)

	return chat.ChatOutput{ConversationID: convID, Reply: reply}, nil
}

func (uc *implUseCase) History(ctx context.Context, conversationID string) (chat.HistoryOutput, error) {
	turns, err := uc.repo.GetConversation(ctx, conversationID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.History: %v", err)
		return chat.HistoryOutput{}, err
	}
	return chat.HistoryOutput{ConversationID: conversationID, Turns: turns}, nil
}

// reminderTurn runs the tool-calling pipeline: generate with the reminder
// tools advertised, interpret the response into a canonical operation and
// dispatch it. Upstream failures degrade to an apologetic reply.
func (uc *implUseCase) reminderTurn(ctx context.Context, history []chat.ConversationTurn, message string) string {
	contents := []gemini.Content{
		{Role: "user", Parts: []gemini.Part{{Text: agent.SystemPrompt}}},
		{Role: "model", Parts: []gemini.Part{{Text: agent.SystemPromptAck}}},
	}
	contents = append(contents, historyContents(history)...)
	contents = append(contents, gemini.Content{Role: "user", Parts: []gemini.Part{{Text: message}}})

	resp, err := uc.generator.GenerateContent(ctx, gemini.GenerateRequest{
		Contents:         contents,
		Tools:            agent.Tools(),
		GenerationConfig: defaultGenerationConfig(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.reminderTurn: %v", err)
		return replyUpstreamFailure
	}

	return uc.dispatch(ctx, uc.interpreter.Interpret(ctx, resp, message))
}

// generalTurn runs plain generation without tools; the model's text is the
// reply verbatim.
func (uc *implUseCase) generalTurn(ctx context.Context, history []chat.ConversationTurn, message string) string {
	contents := historyContents(history)
	contents = append(contents, gemini.Content{
		Role:  "user",
		Parts: []gemini.Part{{Text: agent.GeneralSystemPrompt + "\n\nUser message: " + message}},
	})

	resp, err := uc.generator.GenerateContent(ctx, gemini.GenerateRequest{
		Contents:         contents,
		GenerationConfig: defaultGenerationConfig(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.generalTurn: %v", err)
		return replyUpstreamFailure
	}

	if text := resp.Text(); text != "" {
		return text
	}
	return replyNoText
}

// recordTurn appends the user/assistant pair to the history, refreshes the
// cache and persists in the background. The reply never waits on the write.
func (uc *implUseCase) recordTurn(ctx context.Context, convID string, history []chat.ConversationTurn, message, reply string) {
	timestamp := time.Now().Format("2006-01-02T15:04:05")
	turns := append(history,
		chat.ConversationTurn{Role: chat.RoleUser, Content: message, Timestamp: timestamp},
		chat.ConversationTurn{Role: chat.RoleAssistant, Content: reply, Timestamp: timestamp},
	)
	uc.historyCache.Add(convID, turns)

	go func() {
		saveCtx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		err := uc.repo.SaveConversation(saveCtx, repository.SaveConversationOptions{ID: convID, Turns: turns})
		if err != nil {
			uc.l.Errorf(saveCtx, "chat.usecase.recordTurn: save conversation %s: %v", convID, err)
		}
	}()
}

func (uc *implUseCase) loadHistory(ctx context.Context, convID string) []chat.ConversationTurn {
	if turns, ok := uc.historyCache.Get(convID); ok {
		return turns
	}

	turns, err := uc.repo.GetConversation(ctx, convID)
	if err != nil {
		// History is best-effort context; a failed read starts a fresh one.
		uc.l.Warnf(ctx, "chat.usecase.loadHistory: %v", err)
		return []chat.ConversationTurn{}
	}
	return turns
}

func historyContents(history []chat.ConversationTurn) []gemini.Content {
	contents := make([]gemini.Content, 0, len(history))
	for _, turn := range history {
		role := "user"
		if turn.Role == chat.RoleAssistant {
			role = "model"
		}
		contents = append(contents, gemini.Content{Role: role, Parts: []gemini.Part{{Text: turn.Content}}})
	}
	return contents
}

func defaultGenerationConfig() *gemini.GenerationConfig {
	return &gemini.GenerationConfig{
		Temperature:     0.7,
		TopP:            0.95,
		TopK:            40,
		MaxOutputTokens: 1024,
	}
}
