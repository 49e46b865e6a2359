package main

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestSetFlagAliases(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var history bool
	flags.BoolVar(&history, "history", false, "")
	setFlagAliases(flags, historyFlagAliases)

	if err := flags.Parse([]string{"--hist"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !history {
		t.Fatal("expected --hist to set --history")
	}
}

func TestHistoryAliasRegistered(t *testing.T) {
	for _, name := range []string{"run", "listen"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil {
			t.Fatalf("find %s: %v", name, err)
		}
		if cmd.Flags().Lookup("hist") == nil {
			t.Fatalf("expected %s to accept --hist", name)
		}
	}
}
