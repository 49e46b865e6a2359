package command

import (
	internalstrings "github.com/amonks/butler/internal/strings"
)

// Kind is the recognized shape of a command.
type Kind int

const (
	// KindUnrecognized matched no trigger phrase.
	KindUnrecognized Kind = iota

	// KindTaskCreation matched "create task", "add task" or "new task".
	KindTaskCreation

	// KindJournalCreation matched "create journal", "add journal" or "new journal".
	KindJournalCreation
)

func (k Kind) String() string {
	switch k {
	case KindTaskCreation:
		return "task-creation"
	case KindJournalCreation:
		return "journal-creation"
	default:
		return "unrecognized"
	}
}

var (
	taskCreationPhrases    = []string{"create task", "add task", "new task"}
	journalCreationPhrases = []string{"create journal", "add journal", "new journal"}
)

// Classification is the result of Classify.
type Classification struct {
	Kind     Kind
	Intent   Intent
	Category Category
}

// Recognized reports whether the command matched a known trigger phrase.
func (c Classification) Recognized() bool {
	return c.Kind != KindUnrecognized
}

// Classify maps command text to its kind by keyword. Task phrases are
// checked before journal phrases; the first match wins.
func Classify(text string) Classification {
	lower := internalstrings.NormalizeLower(internalstrings.NormalizeWhitespace(text))

	switch {
	case internalstrings.ContainsAny(lower, taskCreationPhrases...):
		return Classification{Kind: KindTaskCreation, Intent: IntentAdd, Category: CategoryTask}
	case internalstrings.ContainsAny(lower, journalCreationPhrases...):
		return Classification{Kind: KindJournalCreation, Intent: IntentAdd, Category: CategoryJournal}
	default:
		return Classification{Kind: KindUnrecognized}
	}
}
