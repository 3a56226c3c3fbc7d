package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"reminder-ai/internal/reminder"
	"reminder-ai/internal/reminder/repository"
	reminderSqlite "reminder-ai/internal/reminder/repository/sqlite"
	storage "reminder-ai/internal/storage/sqlite"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()

	db, err := storage.NewDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return reminderSqlite.New(db, nopLogger{})
}

func TestReminderRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created, err := repo.CreateReminder(ctx, repository.CreateReminderOptions{
		Message:  "buy milk",
		Date:     "2030-01-02",
		Priority: "high",
		Tags:     []string{"errand", "food"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Errorf("expected assigned id")
	}
	if created.Completed {
		t.Errorf("new reminder must start uncompleted")
	}
	if len(created.Tags) != 2 || created.Tags[0] != "errand" {
		t.Errorf("tags not round-tripped: %v", created.Tags)
	}

	fetched, err := repo.GetOneReminder(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched.Message != "buy milk" || fetched.Date != "2030-01-02" || fetched.Priority != "high" {
		t.Errorf("unexpected fetched reminder: %+v", fetched)
	}
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	a, _ := repo.CreateReminder(ctx, repository.CreateReminderOptions{Message: "a", Date: "2030-01-01", Priority: "normal", Tags: []string{}})
	repo.CreateReminder(ctx, repository.CreateReminderOptions{Message: "b", Date: "2030-01-02", Priority: "normal", Tags: []string{}})
	repo.CreateReminder(ctx, repository.CreateReminderOptions{Message: "c", Date: "2030-01-03", Priority: "normal", Tags: []string{}})

	if err := repo.SetCompleted(ctx, a.ID); err != nil {
		t.Fatalf("set completed failed: %v", err)
	}

	active, err := repo.ListReminders(ctx, repository.ListRemindersOptions{Completed: false})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("expected 2 active reminders, got %d", len(active))
	}
	for _, rem := range active {
		if rem.Completed {
			t.Errorf("active listing returned completed row")
		}
	}

	completed, _ := repo.ListReminders(ctx, repository.ListRemindersOptions{Completed: true})
	if len(completed) != 1 || completed[0].Message != "a" {
		t.Errorf("unexpected completed listing: %+v", completed)
	}

	byDate, _ := repo.ListReminders(ctx, repository.ListRemindersOptions{Date: "2030-01-02"})
	if len(byDate) != 1 || byDate[0].Message != "b" {
		t.Errorf("unexpected date filtered listing: %+v", byDate)
	}

	byDates, _ := repo.ListReminders(ctx, repository.ListRemindersOptions{Dates: []string{"2030-01-02", "2030-01-03"}})
	if len(byDates) != 2 {
		t.Errorf("expected 2 rows for IN filter, got %d", len(byDates))
	}
}

func TestNotFoundSemantics(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, err := repo.GetOneReminder(ctx, 99); !errors.Is(err, reminder.ErrReminderNotFound) {
		t.Errorf("expected ErrReminderNotFound from get, got %v", err)
	}
	if err := repo.SetCompleted(ctx, 99); !errors.Is(err, reminder.ErrReminderNotFound) {
		t.Errorf("expected ErrReminderNotFound from complete, got %v", err)
	}
	if err := repo.DeleteReminder(ctx, 99); !errors.Is(err, reminder.ErrReminderNotFound) {
		t.Errorf("expected ErrReminderNotFound from delete, got %v", err)
	}

	created, _ := repo.CreateReminder(ctx, repository.CreateReminderOptions{Message: "x", Date: "2030-01-01", Priority: "normal"})
	if err := repo.DeleteReminder(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.DeleteReminder(ctx, created.ID); !errors.Is(err, reminder.ErrReminderNotFound) {
		t.Errorf("second delete should be not found, got %v", err)
	}
}
