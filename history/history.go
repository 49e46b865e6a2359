// Package history keeps the session's command history: an append-only,
// newest-first log of normalized command records.
//
// A Log is owned by whoever builds the interpreter and shared by reference
// with every screen that shows history. Reads return copies, so callers may
// hold on to them while other goroutines keep appending.
package history

import (
	"sync"

	"github.com/amonks/butler/command"
)

// DefaultRecent is how many commands a "recent commands" view shows.
const DefaultRecent = 10

// Log is a concurrency-safe command history.
// The zero value is an empty log ready for use.
type Log struct {
	mu       sync.RWMutex
	commands []command.Command
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Append records cmd as the most recent command.
// Identical commands are kept as separate records.
func (l *Log) Append(cmd command.Command) {
	l.mu.Lock()
	defer l.mu.Unlock()

	commands := make([]command.Command, 0, len(l.commands)+1)
	commands = append(commands, cmd)
	l.commands = append(commands, l.commands...)
}

// List returns every command, newest first.
func (l *Log) List() []command.Command {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]command.Command(nil), l.commands...)
}

// Recent returns the n newest commands. n <= 0 yields an empty slice.
func (l *Log) Recent(n int) []command.Command {
	if n <= 0 {
		return []command.Command{}
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	n = min(n, len(l.commands))
	return append([]command.Command(nil), l.commands[:n]...)
}

// ByCategory returns the commands targeting category, newest first.
func (l *Log) ByCategory(category command.Category) []command.Command {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var matches []command.Command
	for _, cmd := range l.commands {
		if cmd.Category == category {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// Len returns the number of recorded commands.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.commands)
}

// Clear removes every command.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.commands = nil
}
