package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"reminder-ai/internal/reminder"
	"reminder-ai/internal/reminder/repository"
)

func (r *implRepository) CreateReminder(ctx context.Context, opt repository.CreateReminderOptions) (reminder.Reminder, error) {
	tags := opt.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return reminder.Reminder{}, fmt.Errorf("failed to marshal tags: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reminders (user_message, date, priority, tags) VALUES (?, ?, ?, ?)`,
		opt.Message, opt.Date, opt.Priority, string(tagsJSON),
	)
	if err != nil {
		return reminder.Reminder{}, fmt.Errorf("failed to insert reminder: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return reminder.Reminder{}, fmt.Errorf("failed to read inserted id: %w", err)
	}

	return r.GetOneReminder(ctx, id)
}

func (r *implRepository) ListReminders(ctx context.Context, opt repository.ListRemindersOptions) ([]reminder.Reminder, error) {
	query := `SELECT id, user_message, date, priority, tags, completed FROM reminders WHERE completed = ?`
	args := []any{boolToInt(opt.Completed)}

	switch {
	case len(opt.Dates) > 0:
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(opt.Dates)), ", ")
		query += fmt.Sprintf(" AND date IN (%s)", placeholders)
		for _, d := range opt.Dates {
			args = append(args, d)
		}
	case opt.Date != "":
		query += " AND date = ?"
		args = append(args, opt.Date)
	}

	// Priority rank ordering is applied by the usecase; here we only fix
	// the date order and make the result deterministic.
	query += " ORDER BY date ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []reminder.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reminders, nil
}

func (r *implRepository) GetOneReminder(ctx context.Context, id int64) (reminder.Reminder, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_message, date, priority, tags, completed FROM reminders WHERE id = ?`, id)

	rem, err := scanReminder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return reminder.Reminder{}, reminder.ErrReminderNotFound
	}
	return rem, err
}

func (r *implRepository) SetCompleted(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reminders SET completed = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to complete reminder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return reminder.ErrReminderNotFound
	}
	return nil
}

func (r *implRepository) DeleteReminder(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return reminder.ErrReminderNotFound
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanReminder(row scannable) (reminder.Reminder, error) {
	var (
		rem       reminder.Reminder
		tagsJSON  sql.NullString
		completed int
	)
	if err := row.Scan(&rem.ID, &rem.Message, &rem.Date, &rem.Priority, &tagsJSON, &completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return reminder.Reminder{}, err
		}
		return reminder.Reminder{}, fmt.Errorf("failed to scan reminder: %w", err)
	}

	rem.Completed = completed != 0
	rem.Tags = []string{}
	if tagsJSON.Valid && tagsJSON.String != "" {
		// Corrupt tag payloads degrade to no tags rather than failing the read
		_ = json.Unmarshal([]byte(tagsJSON.String), &rem.Tags)
	}
	return rem, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
