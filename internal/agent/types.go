package agent

import "strconv"

// Operation is a canonical reminder operation extracted from a model response.
type Operation string

const (
	OperationAddReminder          Operation = "add_reminder"
	OperationGetReminders         Operation = "get_reminders"
	OperationCompleteReminder     Operation = "complete_reminder"
	OperationDeleteReminder       Operation = "delete_reminder"
	OperationGetUpcomingReminders Operation = "get_upcoming_reminders"
	OperationNone                 Operation = "none"
)

// KnownOperation reports whether name is one of the dispatchable operations.
func KnownOperation(name string) bool {
	switch Operation(name) {
	case OperationAddReminder,
		OperationGetReminders,
		OperationCompleteReminder,
		OperationDeleteReminder,
		OperationGetUpcomingReminders:
		return true
	}
	return false
}

// Args holds the flat argument mapping of an operation request. Values are
// strings, bools, numbers or lists of strings depending on the argument.
type Args map[string]interface{}

// String returns the argument as a string, or "" when absent or not a string.
func (a Args) String(key string) string {
	v, ok := a[key]
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}

// Bool returns the argument as a bool. String forms of true/false are accepted
// since pseudo-call parsing yields every value as text.
func (a Args) Bool(key string) bool {
	v, ok := a[key]
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(b)
		return err == nil && parsed
	}
	return false
}

// Int64 returns the argument as an int64, or 0 when absent or unparseable.
func (a Args) Int64(key string) (int64, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

// StringSlice returns the argument as a list of strings. Non-string elements
// are skipped.
func (a Args) StringSlice(key string) []string {
	v, ok := a[key]
	if !ok {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		if s, isStr := v.(string); isStr && s != "" {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, isStr := item.(string); isStr {
			out = append(out, s)
		}
	}
	return out
}

// OperationRequest is the interpreter's output. When Operation is
// OperationNone, Text carries the model's raw reply for the caller to use
// verbatim.
type OperationRequest struct {
	Operation Operation
	Args      Args
	Text      string
}
