package main

import (
	"fmt"

	"github.com/amonks/butler/interpreter"
)

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit %d", e.code)
}

func (e exitError) ExitCode() int {
	return e.code
}

func (e exitError) Unwrap() error {
	return e.err
}

// exitFromResults fails with exit code 1 when any dispatch failed.
func exitFromResults(results []interpreter.Result) error {
	failed := 0
	for _, result := range results {
		if !result.OK() {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	noun := "commands"
	if len(results) == 1 {
		noun = "command"
	}
	return exitError{code: 1, err: fmt.Errorf("%d of %d %s failed", failed, len(results), noun)}
}
