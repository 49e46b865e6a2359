package main

import (
	"testing"

	"github.com/amonks/butler/internal/testsupport"
	"github.com/rogpeppe/go-internal/testscript"
)

func TestBarScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/bar",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
