package task

import (
	"context"
	"fmt"
	"sync"

	internalstrings "github.com/amonks/butler/internal/strings"
)

// Store holds the session's tasks in memory.
// Top-level tasks are kept newest first; follow-ups keep insertion order.
type Store struct {
	mu    sync.Mutex
	tasks []Task
}

// NewStore returns a store seeded with initial, in the given order.
func NewStore(initial ...Task) *Store {
	s := &Store{}
	for _, t := range initial {
		t = t.clone()
		t.IsToday = t.DueDate == DueToday
		s.tasks = append(s.tasks, t)
	}
	return s
}

// Add inserts a task. A task naming a ParentTaskID becomes a follow-up of
// that top-level task; if the parent is missing it is added top-level.
// IsToday is recomputed from DueDate.
func (s *Store) Add(ctx context.Context, t Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.Title = internalstrings.TrimSpace(t.Title)
	if err := ValidateTask(&t); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if findTask(s.tasks, t.ID) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
	}

	t = t.clone()
	t.IsToday = t.DueDate == DueToday

	if t.ParentTaskID != "" {
		for i := range s.tasks {
			if s.tasks[i].ID == t.ParentTaskID {
				s.tasks[i].FollowUps = append(s.tasks[i].FollowUps, t)
				return nil
			}
		}
	}

	tasks := make([]Task, 0, len(s.tasks)+1)
	tasks = append(tasks, t)
	s.tasks = append(tasks, s.tasks...)
	return nil
}

// List returns a copy of every top-level task with its follow-ups.
func (s *Store) List() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]Task, len(s.tasks))
	for i, t := range s.tasks {
		tasks[i] = t.clone()
	}
	return tasks
}

// Show returns the task with the given ID, searching follow-ups too.
func (s *Store) Show(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := findTask(s.tasks, id)
	if found == nil {
		return Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return found.clone(), nil
}

// UpdateOptions configures fields to update on a task.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *string
	DueTime     *string
	Priority    *Priority
}

// Update applies opts to the task with the given ID and returns the result.
func (s *Store) Update(id string, opts UpdateOptions) (Task, error) {
	if opts.Title != nil {
		title := internalstrings.TrimSpace(*opts.Title)
		if err := ValidateTitle(title); err != nil {
			return Task{}, err
		}
		opts.Title = &title
	}
	if opts.Priority != nil {
		if err := ValidatePriority(*opts.Priority); err != nil {
			return Task{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := findTask(s.tasks, id)
	if found == nil {
		return Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	if opts.Title != nil {
		found.Title = *opts.Title
	}
	if opts.Description != nil {
		found.Description = *opts.Description
	}
	if opts.Completed != nil {
		found.Completed = *opts.Completed
	}
	if opts.DueDate != nil {
		found.DueDate = *opts.DueDate
		found.IsToday = found.DueDate == DueToday
	}
	if opts.DueTime != nil {
		found.DueTime = *opts.DueTime
	}
	if opts.Priority != nil {
		found.Priority = *opts.Priority
	}

	return found.clone(), nil
}

// ToggleCompletion flips the completed flag of the task with the given ID.
func (s *Store) ToggleCompletion(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := findTask(s.tasks, id)
	if found == nil {
		return Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	found.Completed = !found.Completed
	return found.clone(), nil
}

// Delete removes the task with the given ID along with its follow-ups.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, removed := deleteTask(s.tasks, id)
	if !removed {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	s.tasks = tasks
	return nil
}

func findTask(tasks []Task, id string) *Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
		if found := findTask(tasks[i].FollowUps, id); found != nil {
			return found
		}
	}
	return nil
}

func deleteTask(tasks []Task, id string) ([]Task, bool) {
	for i := range tasks {
		if tasks[i].ID == id {
			return append(tasks[:i:i], tasks[i+1:]...), true
		}
		if followUps, removed := deleteTask(tasks[i].FollowUps, id); removed {
			tasks[i].FollowUps = followUps
			return tasks, true
		}
	}
	return tasks, false
}
