package usecase_test

import (
	"context"
	"errors"
	"sync"

	"reminder-ai/internal/chat"
	"reminder-ai/internal/chat/repository"
	"reminder-ai/internal/reminder"
	"reminder-ai/pkg/gemini"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errUpstreamDown = errors.New("upstream down")

// fakeGenerator returns a canned response and records the last request.
type fakeGenerator struct {
	mu       sync.Mutex
	resp     *gemini.GenerateResponse
	err      error
	lastReq  gemini.GenerateRequest
	numCalls int
}

func (g *fakeGenerator) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastReq = req
	g.numCalls++
	if g.err != nil {
		return nil, g.err
	}
	return g.resp, nil
}

func (g *fakeGenerator) last() gemini.GenerateRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastReq
}

func textResp(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{{Content: gemini.Content{
			Role:  "model",
			Parts: []gemini.Part{{Text: text}},
		}}},
	}
}

func callResp(name, args string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{{Content: gemini.Content{
			Role: "model",
			Parts: []gemini.Part{{FunctionCall: &gemini.FunctionCall{
				Name: name,
				Args: []byte(args),
			}}},
		}}},
	}
}

// fakeChatRepo stores conversations in memory and signals saves so tests can
// wait for the background write.
type fakeChatRepo struct {
	mu            sync.Mutex
	conversations map[string][]chat.ConversationTurn
	getErr        error
	saved         chan string
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		conversations: map[string][]chat.ConversationTurn{},
		saved:         make(chan string, 8),
	}
}

func (r *fakeChatRepo) GetConversation(ctx context.Context, id string) ([]chat.ConversationTurn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	return append([]chat.ConversationTurn{}, r.conversations[id]...), nil
}

func (r *fakeChatRepo) SaveConversation(ctx context.Context, opts repository.SaveConversationOptions) error {
	r.mu.Lock()
	r.conversations[opts.ID] = append([]chat.ConversationTurn{}, opts.Turns...)
	r.mu.Unlock()
	r.saved <- opts.ID
	return nil
}

func (r *fakeChatRepo) turns(id string) []chat.ConversationTurn {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]chat.ConversationTurn{}, r.conversations[id]...)
}

// fakeReminderUC records dispatched operations and returns canned replies.
type fakeReminderUC struct {
	mu         sync.Mutex
	lastCreate reminder.CreateInput
	lastList   reminder.ListInput
	lastID     int64
	notFound   bool
	created    bool
}

func (f *fakeReminderUC) Create(ctx context.Context, input reminder.CreateInput) (reminder.CreateOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCreate = input
	f.created = true
	return reminder.CreateOutput{Reply: "created: " + input.Message}, nil
}

func (f *fakeReminderUC) List(ctx context.Context, input reminder.ListInput) (reminder.ListOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = input
	return reminder.ListOutput{Reply: "listed"}, nil
}

func (f *fakeReminderUC) Complete(ctx context.Context, id int64) (reminder.CompleteOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastID = id
	if f.notFound {
		return reminder.CompleteOutput{}, reminder.ErrReminderNotFound
	}
	return reminder.CompleteOutput{Reply: "completed"}, nil
}

func (f *fakeReminderUC) Delete(ctx context.Context, id int64) (reminder.DeleteOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastID = id
	if f.notFound {
		return reminder.DeleteOutput{}, reminder.ErrReminderNotFound
	}
	return reminder.DeleteOutput{Reply: "deleted"}, nil
}

func (f *fakeReminderUC) Upcoming(ctx context.Context) (reminder.UpcomingOutput, error) {
	return reminder.UpcomingOutput{Reply: "upcoming"}, nil
}
