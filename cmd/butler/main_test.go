package main

import "testing"

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "butler" {
		t.Fatalf("expected root command name butler, got %q", rootCmd.Use)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"run", "listen", "bar", "suggestions"} {
		found, _, err := rootCmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Fatalf("expected %s subcommand, got %v (%v)", name, found, err)
		}
	}
}
