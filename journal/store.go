package journal

import (
	"context"
	"fmt"
	"sync"

	internalstrings "github.com/amonks/butler/internal/strings"
)

// Store holds the session's journal entries in memory, newest first.
type Store struct {
	mu      sync.Mutex
	entries []Entry
}

// NewStore returns a store seeded with initial, in the given order.
func NewStore(initial ...Entry) *Store {
	s := &Store{}
	for _, e := range initial {
		s.entries = append(s.entries, e.clone())
	}
	return s
}

// Add records a new entry for today. Entries previously marked as today
// move to yesterday. The new entry is flagged as today and this week, and
// HasMood follows Mood.
func (s *Store) Add(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.Content = internalstrings.TrimSpace(e.Content)
	if err := ValidateEntry(&e); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(e.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}

	for i := range s.entries {
		if s.entries[i].IsToday {
			s.entries[i].Date = DateYesterday
			s.entries[i].IsToday = false
			s.entries[i].IsThisWeek = true
		}
	}

	e = e.clone()
	e.IsToday = true
	e.IsThisWeek = true
	e.HasMood = e.Mood != ""
	s.prepend(e)
	return nil
}

// AddMood records a mood entry exactly as given, without re-dating other entries.
func (s *Store) AddMood(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateEntry(&e); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(e.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}
	s.prepend(e.clone())
	return nil
}

// List returns entries passing filter, newest first.
func (s *Store) List(filter Filter) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []Entry
	for _, e := range s.entries {
		if filter.Matches(e) {
			entries = append(entries, e.clone())
		}
	}
	return entries
}

// Show returns the entry with the given ID.
func (s *Store) Show(id string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return s.entries[i].clone(), nil
}

// UpdateOptions configures fields to update on an entry.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Content *string
	Mood    *string
	Tags    *[]string
}

// Update applies opts to the entry with the given ID and returns the result.
func (s *Store) Update(id string, opts UpdateOptions) (Entry, error) {
	if opts.Content != nil {
		content := internalstrings.TrimSpace(*opts.Content)
		if content == "" {
			return Entry{}, ErrEmptyContent
		}
		opts.Content = &content
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	entry := &s.entries[i]
	if opts.Content != nil {
		entry.Content = *opts.Content
	}
	if opts.Mood != nil {
		entry.Mood = *opts.Mood
		entry.HasMood = entry.Mood != ""
	}
	if opts.Tags != nil {
		entry.Tags = append([]string(nil), (*opts.Tags)...)
	}
	return entry.clone(), nil
}

// Delete removes the entry with the given ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	return nil
}

func (s *Store) prepend(e Entry) {
	entries := make([]Entry, 0, len(s.entries)+1)
	entries = append(entries, e)
	s.entries = append(entries, s.entries...)
}

func (s *Store) indexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}
