package router

// reminderKeywords select the reminder path. Checked as lowercase
// substring membership, first match wins.
var reminderKeywords = []string{
	"remind",
	"reminder",
	"schedule",
	"task",
	"todo",
	"to-do",
	"show reminders",
	"list reminders",
	"upcoming",
	"delete reminder",
	"complete reminder",
	"mark as done",
	"mark as completed",
}
