// Package main implements the butler CLI.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var (
	rootConfigPath string
	rootVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "butler",
	Short: "Butler - a digital butler that understands plain-language commands",
	Long: `Butler turns plain-language commands like

  create task Buy milk tomorrow at 5pm high priority
  new journal entry Today I felt productive

into tasks and journal entries, and keeps a history of what it did.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Config file (default ./butler.toml merged over ~/.config/butler/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Log dispatch details to stderr")
}
