package repository

// CreateReminderOptions holds parameters for inserting a new Reminder.
// Date must already be normalized by the caller.
type CreateReminderOptions struct {
	Message  string
	Date     string
	Priority string
	Tags     []string
}

// ListRemindersOptions holds filter parameters for listing Reminders.
// Date and Dates are exact string matches against the stored date;
// Dates wins when both are set.
type ListRemindersOptions struct {
	Completed bool
	Date      string
	Dates     []string
}
