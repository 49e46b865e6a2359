// Package interpreter dispatches free-text butler commands: it classifies
// the text, extracts fields, creates the task or journal entry, and records
// the command in history.
package interpreter

import (
	"context"
	"errors"
	"time"

	"github.com/amonks/butler/command"
	"github.com/amonks/butler/journal"
	"github.com/amonks/butler/task"
)

// State is the dispatcher's processing state.
type State string

const (
	// StateIdle means no command has been dispatched yet.
	StateIdle State = "idle"

	// StateProcessing means a command is being dispatched.
	StateProcessing State = "processing"

	// StateSuccess means the last command created something.
	StateSuccess State = "success"

	// StateError means the last command was rejected or failed.
	StateError State = "error"
)

// ValidStates returns all valid state values.
func ValidStates() []State {
	return []State{StateIdle, StateProcessing, StateSuccess, StateError}
}

// IsValid returns true if the state is a known value.
func (s State) IsValid() bool {
	for _, valid := range ValidStates() {
		if s == valid {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s ends a dispatch.
func (s State) IsTerminal() bool {
	return s == StateSuccess || s == StateError
}

var (
	// ErrUnrecognized indicates the text matched no trigger phrase.
	ErrUnrecognized = errors.New("command not recognized")

	// ErrMissingField indicates a required field could not be extracted.
	ErrMissingField = errors.New("missing required field")

	// ErrMutationFailed indicates the task or journal store rejected the change.
	ErrMutationFailed = errors.New("mutation failed")

	// ErrMutationTimeout indicates the store did not answer in time.
	ErrMutationTimeout = errors.New("mutation timed out")

	// ErrBusy indicates another command is already being dispatched.
	ErrBusy = errors.New("dispatcher busy")
)

// TaskAdder creates tasks.
type TaskAdder interface {
	Add(ctx context.Context, t task.Task) error
}

// JournalAdder creates journal entries.
type JournalAdder interface {
	Add(ctx context.Context, e journal.Entry) error
}

// Recorder appends dispatched commands to the command history.
type Recorder interface {
	Append(cmd command.Command)
}

// IDGenerator returns a fresh opaque identifier.
type IDGenerator func() string

// Snapshot is the observable dispatcher state.
type Snapshot struct {
	State       State
	LastCommand string
}

// Result describes one dispatch.
type Result struct {
	// State is StateSuccess or StateError.
	State State

	// Text is the dispatched command text.
	Text string

	Classification command.Classification

	// Command is the history record, set on success.
	Command *command.Command

	// Task is the created task, set on a successful task command.
	Task *task.Task

	// Entry is the created journal entry, set on a successful journal command.
	Entry *journal.Entry

	// Err is the reason for StateError.
	Err error
}

// OK reports whether the dispatch succeeded.
func (r Result) OK() bool {
	return r.State == StateSuccess
}

// DefaultMutationTimeout bounds a single store call.
const DefaultMutationTimeout = 5 * time.Second
