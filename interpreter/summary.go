package interpreter

import (
	"fmt"
	"strings"
)

// Summary is a one-line human description of the result.
func (r Result) Summary() string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case r.Task != nil:
		summary := fmt.Sprintf("Created task %q", r.Task.Title)
		var details []string
		if when := strings.TrimSpace(r.Task.DueDate + " " + r.Task.DueTime); when != "" {
			details = append(details, "due "+when)
		}
		if r.Task.Priority != "" {
			details = append(details, string(r.Task.Priority)+" priority")
		}
		if len(details) > 0 {
			summary += " (" + strings.Join(details, ", ") + ")"
		}
		return summary
	case r.Entry != nil:
		return fmt.Sprintf("Added journal entry %q", r.Entry.Content)
	default:
		return string(r.State)
	}
}
