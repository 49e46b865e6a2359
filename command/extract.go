package command

import (
	"fmt"
	"regexp"
	"strings"

	internalstrings "github.com/amonks/butler/internal/strings"
)

// Due dates produced by ExtractDueDate.
const (
	DueToday    = "Today"
	DueTomorrow = "Tomorrow"
)

// Priorities produced by ExtractPriority.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// notWordChar is a rune that cannot continue a word. RE2's \b only knows
// ASCII word characters, so it would split "Léon" before "on".
const notWordChar = `[^\p{L}\p{N}_]`

var (
	taskTriggerPattern    = wordPattern(`(?:create|add|new)\s+task`)
	taskStopPattern       = wordPattern(`due|at|on|tomorrow|today|priority`)
	journalTriggerPattern = wordPattern(`journal\s+(?:entry|note)`)
	journalStopPattern    = wordPattern(`mood|feeling|tags?`)
	tomorrowPattern       = wordPattern(`tomorrow`)
	todayPattern          = wordPattern(`today`)
	dueTimePattern        = regexp.MustCompile(`(?i)(?:^|` + notWordChar + `)at\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
)

// wordPattern matches words as a whole, case-insensitively. Submatch 1 is
// the matched words without the surrounding boundary runes.
func wordPattern(words string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|` + notWordChar + `)(` + words + `)(?:$|` + notWordChar + `)`)
}

// TaskFields holds the fields extracted from a task-creation command.
// Empty strings mean the field was absent.
type TaskFields struct {
	Title    string
	DueDate  string
	DueTime  string
	Priority string
}

// JournalFields holds the fields extracted from a journal-creation command.
type JournalFields struct {
	Content string
}

// ExtractTitle returns the task title: the text after "create task",
// "add task" or "new task" up to the first stop keyword.
func ExtractTitle(text string) (string, bool) {
	return extractWindow(text, taskTriggerPattern, taskStopPattern)
}

// ExtractDueDate returns DueTomorrow or DueToday when the command mentions
// either day. Tomorrow takes precedence when both appear.
func ExtractDueDate(text string) (string, bool) {
	if tomorrowPattern.MatchString(text) {
		return DueTomorrow, true
	}
	if todayPattern.MatchString(text) {
		return DueToday, true
	}
	return "", false
}

// ExtractDueTime finds "at H[:MM][am|pm]" and normalizes it to "H:MM am" or
// "H:MM pm". Missing minutes become 00 and a missing suffix becomes pm.
// Trailing text is ignored, so "at 123" reads as 12:00 pm.
func ExtractDueTime(text string) (string, bool) {
	match := dueTimePattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}

	hour, minute, suffix := match[1], match[2], strings.ToLower(match[3])
	if minute == "" {
		minute = "00"
	}
	if suffix == "" {
		suffix = "pm"
	}
	return fmt.Sprintf("%s:%s %s", hour, minute, suffix), true
}

// ExtractPriority returns the priority named by "high priority",
// "medium priority" or "low priority", checked in that order.
func ExtractPriority(text string) (string, bool) {
	lower := internalstrings.NormalizeLower(text)
	for _, priority := range []string{PriorityHigh, PriorityMedium, PriorityLow} {
		if strings.Contains(lower, priority+" priority") {
			return priority, true
		}
	}
	return "", false
}

// ExtractJournalContent returns the text after "journal entry" or
// "journal note" up to the first of mood, feeling or tag.
func ExtractJournalContent(text string) (string, bool) {
	return extractWindow(text, journalTriggerPattern, journalStopPattern)
}

// ExtractTaskFields runs every task extractor. It reports false when the
// title, the only required field, is absent.
func ExtractTaskFields(text string) (TaskFields, bool) {
	title, ok := ExtractTitle(text)
	if !ok {
		return TaskFields{}, false
	}
	fields := TaskFields{Title: title}
	fields.DueDate, _ = ExtractDueDate(text)
	fields.DueTime, _ = ExtractDueTime(text)
	fields.Priority, _ = ExtractPriority(text)
	return fields, true
}

// ExtractJournalFields runs the journal extractors. It reports false when
// the content is absent.
func ExtractJournalFields(text string) (JournalFields, bool) {
	content, ok := ExtractJournalContent(text)
	if !ok {
		return JournalFields{}, false
	}
	return JournalFields{Content: content}, true
}

// extractWindow returns the text between the first trigger match and the
// first following stop match (or the end of text), with surrounding
// whitespace and a leading separator like "add task: ..." removed.
func extractWindow(text string, trigger, stop *regexp.Regexp) (string, bool) {
	loc := trigger.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", false
	}

	window := text[loc[3]:]
	if end := stop.FindStringSubmatchIndex(window); end != nil {
		window = window[:end[2]]
	}

	window = strings.TrimSpace(strings.TrimLeft(window, ":-, \t"))
	if window == "" {
		return "", false
	}
	return window, true
}
