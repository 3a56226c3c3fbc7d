package usecase_test

import (
	"context"
	"errors"

	"reminder-ai/internal/reminder"
	"reminder-ai/internal/reminder/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepo is an in-memory reminder.Repository.
type fakeRepo struct {
	nextID    int64
	reminders map[int64]reminder.Reminder
	failWith  error
}

var _ repository.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, reminders: map[int64]reminder.Reminder{}}
}

func (f *fakeRepo) CreateReminder(ctx context.Context, opt repository.CreateReminderOptions) (reminder.Reminder, error) {
	if f.failWith != nil {
		return reminder.Reminder{}, f.failWith
	}
	rem := reminder.Reminder{
		ID:       f.nextID,
		Message:  opt.Message,
		Date:     opt.Date,
		Priority: opt.Priority,
		Tags:     opt.Tags,
	}
	f.reminders[rem.ID] = rem
	f.nextID++
	return rem, nil
}

func (f *fakeRepo) ListReminders(ctx context.Context, opt repository.ListRemindersOptions) ([]reminder.Reminder, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []reminder.Reminder
	for _, rem := range f.reminders {
		if rem.Completed != opt.Completed {
			continue
		}
		if len(opt.Dates) > 0 {
			match := false
			for _, d := range opt.Dates {
				if rem.Date == d {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		} else if opt.Date != "" && rem.Date != opt.Date {
			continue
		}
		out = append(out, rem)
	}
	return out, nil
}

func (f *fakeRepo) GetOneReminder(ctx context.Context, id int64) (reminder.Reminder, error) {
	if f.failWith != nil {
		return reminder.Reminder{}, f.failWith
	}
	rem, ok := f.reminders[id]
	if !ok {
		return reminder.Reminder{}, reminder.ErrReminderNotFound
	}
	return rem, nil
}

func (f *fakeRepo) SetCompleted(ctx context.Context, id int64) error {
	rem, ok := f.reminders[id]
	if !ok {
		return reminder.ErrReminderNotFound
	}
	rem.Completed = true
	f.reminders[id] = rem
	return nil
}

func (f *fakeRepo) DeleteReminder(ctx context.Context, id int64) error {
	if _, ok := f.reminders[id]; !ok {
		return reminder.ErrReminderNotFound
	}
	delete(f.reminders, id)
	return nil
}

var errRepoDown = errors.New("repository unavailable")
