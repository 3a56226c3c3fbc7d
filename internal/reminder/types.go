package reminder

// --- Reminder Domain Model ---

// Reminder is the core domain entity managed by this module.
// Date is always a canonical YYYY-MM-DD string, or the user's original
// date text when normalization could not resolve it. It is never empty.
type Reminder struct {
	ID        int64
	Message   string
	Date      string
	Priority  string
	Tags      []string
	Completed bool
}

// Priority levels. Unrecognized priorities are stored verbatim and sort
// below PriorityLow.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// PriorityRank orders priorities for listing: high > medium > normal > low.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 4
	case PriorityMedium:
		return 3
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// --- UseCase Inputs ---

type CreateInput struct {
	Message  string
	Date     string
	Priority string
	Tags     []string
}

type ListInput struct {
	// Date filters on the stored normalized date by exact string match.
	// It is intentionally not renormalized here.
	Date      string
	Completed bool
}

// --- UseCase Outputs ---

// Every output carries Reply, the user-facing text for the chat path.
// REST handlers reuse the same text in the response body.

type CreateOutput struct {
	Reminder Reminder
	Reply    string
}

type ListOutput struct {
	Reminders []Reminder
	Reply     string
}

type CompleteOutput struct {
	Reminder         Reminder
	AlreadyCompleted bool
	Reply            string
}

type DeleteOutput struct {
	Reminder Reminder
	Reply    string
}

type UpcomingOutput struct {
	Reminders []Reminder
	Reply     string
}
