package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce  sync.Once
	butlerPath string
	buildErr   error
)

// BuildButler builds the butler binary once and returns its path.
func BuildButler(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "butler-bin-")
		if err != nil {
			buildErr = err
			return
		}

		butlerPath = filepath.Join(binDir, "butler")
		cmd := exec.Command("go", "build", "-o", butlerPath, "./cmd/butler")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build butler: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return butlerPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("BUTLER", BuildButler(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdResultCount checks how many results in a `butler run --json` output
// file have the given state.
func CmdResultCount(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("resultcount does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: resultcount FILE STATE N")
	}

	var results []struct {
		State string `json:"state"`
	}
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		ts.Fatalf("parse results: %v", err)
	}

	count := 0
	for _, result := range results {
		if result.State == args[1] {
			count++
		}
	}
	if want := args[2]; fmt.Sprint(count) != want {
		ts.Fatalf("expected %s results with state %q, got %d", want, args[1], count)
	}
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
