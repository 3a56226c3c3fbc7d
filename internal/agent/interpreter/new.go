package interpreter

import (
	"context"

	"reminder-ai/internal/agent"
	"reminder-ai/pkg/gemini"
	pkgLog "reminder-ai/pkg/log"
)

// Interpreter extracts a canonical operation request from a model response.
// It never fails: when no structured operation is recoverable it degrades to
// agent.OperationNone with the raw reply text preserved.
type Interpreter interface {
	Interpret(ctx context.Context, resp *gemini.GenerateResponse, userMessage string) agent.OperationRequest
}

type implInterpreter struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) Interpreter {
	return implInterpreter{
		l: l,
	}
}
