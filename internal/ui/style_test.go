package ui

import "testing"

func TestStylesArePlainWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	for name, style := range map[string]func(string) string{
		"success": Success,
		"error":   Error,
		"muted":   Muted,
		"header":  Header,
	} {
		if got := style("Task created"); got != "Task created" {
			t.Fatalf("%s: expected plain text, got %q", name, got)
		}
	}
}
