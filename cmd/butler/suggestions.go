package main

import (
	"fmt"
	"strings"

	"github.com/amonks/butler/command"
	"github.com/amonks/butler/internal/markdown"
	"github.com/amonks/butler/internal/ui"
	"github.com/spf13/cobra"
)

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "Show example commands",
	Args:  cobra.NoArgs,
	RunE:  runSuggestions,
}

var suggestionsJSON bool

func init() {
	rootCmd.AddCommand(suggestionsCmd)

	suggestionsCmd.Flags().BoolVar(&suggestionsJSON, "json", false, "Output suggestions as JSON")
}

func runSuggestions(cmd *cobra.Command, args []string) error {
	groups := command.Suggestions()
	out := cmd.OutOrStdout()
	if suggestionsJSON {
		return encodeJSON(out, groups)
	}

	rendered := markdown.SafeRender(ui.TerminalWidth(80), 0, []byte(formatSuggestionsMarkdown(groups)))
	_, err := fmt.Fprintln(out, string(rendered))
	return err
}

func formatSuggestionsMarkdown(groups []command.SuggestionGroup) string {
	var builder strings.Builder
	for i, group := range groups {
		if i > 0 {
			builder.WriteString("\n")
		}
		fmt.Fprintf(&builder, "## %s\n\n", group.Title)
		for _, suggestion := range group.Suggestions {
			fmt.Fprintf(&builder, "- %s\n", suggestion)
		}
	}
	return builder.String()
}
