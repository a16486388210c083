// Package testsupport holds helpers shared by the testscript e2e tests.
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

	"github.com/tmcli/tm/todo"
)

var (
	buildOnce sync.Once
	tmPath    string
	buildErr  error
)

// BuildTM builds the tm binary once and returns its path.
func BuildTM(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "tm-bin-")
		if err != nil {
			buildErr = err
			return
		}

		tmPath = filepath.Join(binDir, "tm")
		cmd := exec.Command("go", "build", "-o", tmPath, "./cmd/tm")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build tm: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return tmPath
}

// SetupScriptEnv configures common environment variables for testscript.
// Each script gets its own home and data directory, so state never leaks
// between scripts or into the developer's real task list.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TM", BuildTM(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	dataDir := filepath.Join(homeDir, ".local", "share", "tm")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("TM_DATA_DIR", dataDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdTodoID finds a todo by text in a snapshot file and stores its ID in an
// env var.
func CmdTodoID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("todoid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: todoid FILE TEXT VAR")
	}

	var data todo.AppData
	raw := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		ts.Fatalf("parse snapshot: %v", err)
	}

	text := args[1]
	for _, item := range data.Todos {
		if item.Text == text {
			ts.Setenv(args[2], item.ID)
			return
		}
	}

	ts.Fatalf("todo with text %q not found", text)
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
