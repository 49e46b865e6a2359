package main

import (
	"time"

	"github.com/amonks/butler/interpreter"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <command>...",
	Short: "Dispatch one or more commands",
	Long: `Dispatch each argument as a separate command, in order, within one session.

Exits non-zero if any command was not recognized or failed.`,
	Example: `  butler run "create task Buy milk tomorrow at 5pm" "new journal entry Today I felt productive"`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRun,
}

var (
	runJSON    bool
	runHistory bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runJSON, "json", false, "Output results as JSON")
	runCmd.Flags().BoolVar(&runHistory, "history", false, "Print the command history afterwards")
	runCmd.MarkFlagsMutuallyExclusive("json", "history")
	addHistoryFlagAliases(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	results := make([]interpreter.Result, 0, len(args))
	for _, text := range args {
		results = append(results, s.dispatcher.Dispatch(cmd.Context(), text))
	}

	out := cmd.OutOrStdout()
	if runJSON {
		encoded := make([]resultJSON, 0, len(results))
		for _, result := range results {
			encoded = append(encoded, newResultJSON(result))
		}
		if err := encodeJSON(out, encoded); err != nil {
			return err
		}
	} else {
		for _, result := range results {
			printResult(out, result)
		}
		if runHistory {
			printHistory(out, s, time.Now())
		}
	}

	return exitFromResults(results)
}
