package main

import (
	"fmt"
	"io"
	"os"

	"github.com/amonks/butler/internal/commandbar"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Open the interactive command bar",
	Args:  cobra.NoArgs,
	RunE:  runBar,
}

func init() {
	rootCmd.AddCommand(barCmd)
}

func runBar(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("butler bar needs an interactive terminal; use butler listen to read commands from stdin")
	}

	// Log lines would tear the full-screen view.
	var logOutput io.Writer = io.Discard
	if rootVerbose {
		logOutput = cmd.ErrOrStderr()
	}
	s, err := openSession(logOutput)
	if err != nil {
		return err
	}
	defer s.Close()

	return commandbar.Run(cmd.Context(), s.dispatcher, s.history, commandbar.Options{
		Recent: s.cfg.History.Recent,
	})
}
