package main

import (
	"time"

	"github.com/amonks/butler/interpreter"
	"github.com/spf13/cobra"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Dispatch commands read from stdin, one per line",
	Long: `Read finalized utterances from stdin, one per line, and dispatch each as it
arrives. Blank lines are skipped. Pipe a speech-to-text transcript in, or type
commands and finish with ctrl-d.`,
	Args: cobra.NoArgs,
	RunE: runListen,
}

var listenHistory bool

func init() {
	rootCmd.AddCommand(listenCmd)

	listenCmd.Flags().BoolVar(&listenHistory, "history", false, "Print the command history at end of input")
	addHistoryFlagAliases(listenCmd)
}

func runListen(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	err = interpreter.ListenReader(cmd.Context(), s.dispatcher, cmd.InOrStdin(), func(result interpreter.Result) {
		printResult(out, result)
	})
	if err != nil {
		return err
	}

	if listenHistory {
		printHistory(out, s, time.Now())
	}
	return nil
}
