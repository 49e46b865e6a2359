// Package command turns free-text butler commands into structured data.
//
// It holds the normalized Command record kept in the command history, the
// intent classifier, and one extractor per field. Every function here is
// pure: no I/O, no clock, no shared state.
package command

import (
	"time"

	internalage "github.com/amonks/butler/internal/age"
)

// Intent is the coarse action a command asks for.
type Intent string

const (
	// IntentAdd creates something.
	IntentAdd Intent = "add"

	// IntentView displays something.
	IntentView Intent = "view"

	// IntentUpdate changes something.
	IntentUpdate Intent = "update"

	// IntentDelete removes something.
	IntentDelete Intent = "delete"
)

// ValidIntents returns all valid intent values.
func ValidIntents() []Intent {
	return []Intent{IntentAdd, IntentView, IntentUpdate, IntentDelete}
}

// IsValid returns true if the intent is a known value.
func (i Intent) IsValid() bool {
	for _, valid := range ValidIntents() {
		if i == valid {
			return true
		}
	}
	return false
}

// Category is the butler module a command targets.
type Category string

const (
	CategoryTask    Category = "task"
	CategoryJournal Category = "journal"
	CategoryContact Category = "contact"
	CategoryFinance Category = "finance"
	CategoryFitness Category = "fitness"
	CategoryGoal    Category = "goal"
	CategoryTravel  Category = "travel"
)

// ValidCategories returns all valid category values.
func ValidCategories() []Category {
	return []Category{
		CategoryTask,
		CategoryJournal,
		CategoryContact,
		CategoryFinance,
		CategoryFitness,
		CategoryGoal,
		CategoryTravel,
	}
}

// IsValid returns true if the category is a known value.
func (c Category) IsValid() bool {
	for _, valid := range ValidCategories() {
		if c == valid {
			return true
		}
	}
	return false
}

// Command is the normalized history record of a dispatched command.
// Records are immutable once created.
type Command struct {
	// ID is an opaque token, unique within a history log.
	ID string `json:"id"`

	// Text is the command exactly as the user typed or spoke it.
	Text string `json:"text"`

	Intent   Intent   `json:"intent"`
	Category Category `json:"category"`

	// Timestamp is when the command was recorded.
	Timestamp time.Time `json:"timestamp"`

	// TimeAgo is the display age captured at creation ("Just now").
	// Use TimeAgo(cmd, now) for a fresh value.
	TimeAgo string `json:"time_ago"`
}

// New builds a Command recorded at now.
func New(id, text string, intent Intent, category Category, now time.Time) Command {
	return Command{
		ID:        id,
		Text:      text,
		Intent:    intent,
		Category:  category,
		Timestamp: now,
		TimeAgo:   internalage.JustNow,
	}
}

// TimeAgo phrases how long ago cmd was recorded, relative to now.
func TimeAgo(cmd Command, now time.Time) string {
	return internalage.Phrase(cmd.Timestamp, now)
}
