package usecase

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"reminder-ai/internal/agent/interpreter"
	"reminder-ai/internal/chat"
	"reminder-ai/internal/chat/repository"
	"reminder-ai/internal/reminder"
	"reminder-ai/internal/router"
	"reminder-ai/pkg/gemini"
	pkgLog "reminder-ai/pkg/log"
)

const historyCacheSize = 256

// Generator is the slice of the Gemini client the chat pipeline needs.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	reminderUC  reminder.UseCase
	generator   Generator
	router      router.Router
	interpreter interpreter.Interpreter

	// historyCache keeps recent conversation histories so consecutive turns
	// of the same conversation skip the read. Entries are replaced wholesale
	// on every turn.
	historyCache *lru.Cache[string, []chat.ConversationTurn]
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	reminderUC reminder.UseCase,
	generator Generator,
	rt router.Router,
	itp interpreter.Interpreter,
) *implUseCase {
	cache, _ := lru.New[string, []chat.ConversationTurn](historyCacheSize)
	return &implUseCase{
		l:            l,
		repo:         repo,
		reminderUC:   reminderUC,
		generator:    generator,
		router:       rt,
		interpreter:  itp,
		historyCache: cache,
	}
}
