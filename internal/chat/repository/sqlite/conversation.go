package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"reminder-ai/internal/chat"
	"reminder-ai/internal/chat/repository"
)

func (r *implRepository) GetConversation(ctx context.Context, id string) ([]chat.ConversationTurn, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT messages FROM conversations WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []chat.ConversationTurn{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "chat.repository.sqlite.GetConversation: %v", err)
		return nil, err
	}

	var turns []chat.ConversationTurn
	if err := json.Unmarshal([]byte(raw), &turns); err != nil {
		// A corrupt messages blob degrades to an empty history.
		r.l.Warnf(ctx, "chat.repository.sqlite.GetConversation: corrupt messages for %s: %v", id, err)
		return []chat.ConversationTurn{}, nil
	}
	return turns, nil
}

func (r *implRepository) SaveConversation(ctx context.Context, opts repository.SaveConversationOptions) error {
	raw, err := json.Marshal(opts.Turns)
	if err != nil {
		r.l.Errorf(ctx, "chat.repository.sqlite.SaveConversation: %v", err)
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO conversations (id, messages) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET messages = excluded.messages, updated_at = CURRENT_TIMESTAMP`,
		opts.ID, string(raw))
	if err != nil {
		r.l.Errorf(ctx, "chat.repository.sqlite.SaveConversation: %v", err)
		return err
	}
	return nil
}
