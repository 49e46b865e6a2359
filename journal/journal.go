// Package journal implements the butler journal: dated free-text entries
// with an optional mood and tags, kept in memory newest first.
package journal

import (
	"errors"
)

// Display dates used by the journal.
const (
	DateToday     = "Today"
	DateYesterday = "Yesterday"
)

// Entry is a single journal entry.
type Entry struct {
	ID      string   `json:"id"`
	Content string   `json:"content"`
	Date    string   `json:"date"`
	Mood    string   `json:"mood,omitempty"`
	Tags    []string `json:"tags,omitempty"`

	IsToday    bool `json:"is_today"`
	IsThisWeek bool `json:"is_this_week"`
	HasMood    bool `json:"has_mood"`
}

func (e Entry) clone() Entry {
	if e.Tags != nil {
		e.Tags = append([]string(nil), e.Tags...)
	}
	return e
}

var (
	// ErrEmptyContent is returned when an entry has no content.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyID is returned when an entry has no ID.
	ErrEmptyID = errors.New("entry id cannot be empty")

	// ErrEntryNotFound is returned when an entry with the given ID doesn't exist.
	ErrEntryNotFound = errors.New("journal entry not found")

	// ErrDuplicateID is returned when adding an entry whose ID is already used.
	ErrDuplicateID = errors.New("journal entry id already exists")
)

// ValidateEntry checks that an entry can be stored.
func ValidateEntry(e *Entry) error {
	if e.ID == "" {
		return ErrEmptyID
	}
	if e.Content == "" {
		return ErrEmptyContent
	}
	return nil
}

// Filter selects entries for display.
type Filter string

const (
	FilterAll   Filter = "all"
	FilterToday Filter = "today"
	FilterWeek  Filter = "week"
	FilterMood  Filter = "mood"
)

// Matches reports whether e passes the filter. Unknown filters match everything.
func (f Filter) Matches(e Entry) bool {
	switch f {
	case FilterToday:
		return e.IsToday
	case FilterWeek:
		return e.IsThisWeek
	case FilterMood:
		return e.HasMood
	default:
		return true
	}
}
