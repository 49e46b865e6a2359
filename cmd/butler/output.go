package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/amonks/butler/command"
	"github.com/amonks/butler/internal/ids"
	"github.com/amonks/butler/internal/ui"
	"github.com/amonks/butler/interpreter"
	"github.com/amonks/butler/journal"
	"github.com/amonks/butler/task"
)

func encodeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// resultJSON is the --json form of a dispatch result.
type resultJSON struct {
	Text    string            `json:"text"`
	State   interpreter.State `json:"state"`
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Command *command.Command  `json:"command,omitempty"`
	Task    *task.Task        `json:"task,omitempty"`
	Entry   *journal.Entry    `json:"entry,omitempty"`
}

func newResultJSON(result interpreter.Result) resultJSON {
	out := resultJSON{
		Text:    result.Text,
		State:   result.State,
		Kind:    result.Classification.Kind.String(),
		Message: result.Summary(),
		Command: result.Command,
		Task:    result.Task,
		Entry:   result.Entry,
	}
	if result.Err != nil {
		out.Error = result.Err.Error()
	}
	return out
}

// printResult writes one line of feedback for a dispatch.
func printResult(w io.Writer, result interpreter.Result) {
	if result.OK() {
		fmt.Fprintf(w, "%s %s\n", ui.Success("✓"), result.Summary())
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", ui.Error("✗"), result.Summary(), ui.Muted(fmt.Sprintf("(%q)", result.Text)))
}

func formatHistoryTable(commands []command.Command, now time.Time) string {
	if len(commands) == 0 {
		return "No commands yet.\n"
	}

	commandIDs := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandIDs = append(commandIDs, cmd.ID)
	}
	prefixLengths := ids.UniquePrefixLengths(commandIDs)

	builder := ui.NewTableBuilder([]string{"ID", "CATEGORY", "AGE", "COMMAND"}, len(commands))
	for _, cmd := range commands {
		builder.AddRow([]string{
			ui.HighlightID(cmd.ID, ui.PrefixLength(prefixLengths, cmd.ID)),
			string(cmd.Category),
			ui.FormatTimeAgo(cmd.Timestamp, now),
			ui.TruncateTableCell(cmd.Text),
		})
	}
	return builder.String()
}

func printHistory(w io.Writer, s *session, now time.Time) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.Header("Recent commands"))
	fmt.Fprint(w, formatHistoryTable(s.history.Recent(s.cfg.History.Recent), now))
}
