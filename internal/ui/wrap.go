package ui

import (
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// Wrap word-wraps text to width columns and indents every line by indentBy
// spaces. A width below one disables wrapping.
func Wrap(text string, width, indentBy int) string {
	if width >= 1 {
		text = wordwrap.String(text, max(width-indentBy, 1))
	}
	if indentBy > 0 {
		text = indent.String(text, uint(indentBy))
	}
	return text
}

// TerminalWidth returns the stdout terminal width, or fallback when stdout
// is not a terminal.
func TerminalWidth(fallback int) int {
	if width := tableViewportWidth(); width > 0 {
		return width
	}
	return fallback
}
