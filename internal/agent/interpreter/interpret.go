package interpreter

import (
	"context"
	"strings"

	"reminder-ai/internal/agent"
	"reminder-ai/pkg/gemini"
)

// Interpret walks the fallback chain in order: a structured function call with
// flat arguments, a tagged-value argument payload, a pseudo-call embedded in
// the reply text, keyword inference from the user's own message, and finally
// plain text passthrough.
func (i implInterpreter) Interpret(ctx context.Context, resp *gemini.GenerateResponse, userMessage string) agent.OperationRequest {
	text := resp.Text()

	if call := resp.FunctionCall(); call != nil && agent.KnownOperation(call.Name) {
		if args, ok := parseFlatArgs(call.Args); ok {
			i.l.Infof(ctx, "interpreter.Interpret: structured call %s", call.Name)
			return agent.OperationRequest{Operation: agent.Operation(call.Name), Args: args, Text: text}
		}
		if args, ok := parseTaggedArgs(call.Args); ok {
			i.l.Infof(ctx, "interpreter.Interpret: tagged-value call %s", call.Name)
			return agent.OperationRequest{Operation: agent.Operation(call.Name), Args: args, Text: text}
		}
		i.l.Warnf(ctx, "interpreter.Interpret: unusable args for call %s", call.Name)
	}

	if op, args, ok := parsePseudoCall(text); ok {
		i.l.Infof(ctx, "interpreter.Interpret: pseudo-call %s in text", op)
		return agent.OperationRequest{Operation: op, Args: args, Text: text}
	}

	lowered := strings.ToLower(userMessage)
	if strings.Contains(lowered, "remind") && strings.Contains(lowered, "tomorrow") {
		task := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(lowered, "remind me to", ""), "tomorrow", ""))
		if task != "" {
			i.l.Infof(ctx, "interpreter.Interpret: inferred add_reminder from user message")
			return agent.OperationRequest{
				Operation: agent.OperationAddReminder,
				Args: agent.Args{
					"message": task,
					"date":    "tomorrow",
				},
				Text: text,
			}
		}
	}

	return agent.OperationRequest{Operation: agent.OperationNone, Text: text}
}
