package compiler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nct/internal/config"
)

// writeScript installs a fake compiler executable so invocation mechanics
// can be tested without a C++ toolchain.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write script %s: %v", name, err)
	}
	return path
}

func testConfig(compilerPath string, timeoutSeconds int) *config.Config {
	cfg := config.New()
	cfg.Compiler = compilerPath
	cfg.TimeoutSeconds = timeoutSeconds
	return cfg
}

func TestInvoker_Compile(t *testing.T) {
	scriptDir := t.TempDir()

	t.Run("captures exit code and stderr of a rejecting compiler", func(t *testing.T) {
		script := writeScript(t, scriptDir, "reject.sh",
			`echo "unit.cpp:8:5: error: static assertion failed: index out of bounds" >&2
exit 1`)
		inv := NewInvoker(testConfig(script, 10))

		result, err := inv.Compile(context.Background(), "int main() {}", t.TempDir(), "overrun")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ExitCode != 1 {
			t.Errorf("expected exit code 1, got %d", result.ExitCode)
		}
		if !strings.Contains(result.Stderr, "static assertion failed") {
			t.Errorf("stderr not captured: %q", result.Stderr)
		}
		if result.TimedOut {
			t.Error("unexpected timeout")
		}
		if result.CaseName != "overrun" {
			t.Errorf("expected case name %q, got %q", "overrun", result.CaseName)
		}
	})

	t.Run("reports exit 0 for an accepting compiler", func(t *testing.T) {
		script := writeScript(t, scriptDir, "accept.sh", "exit 0")
		inv := NewInvoker(testConfig(script, 10))

		result, err := inv.Compile(context.Background(), "int main() {}", t.TempDir(), "well_formed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ExitCode != 0 {
			t.Errorf("expected exit code 0, got %d", result.ExitCode)
		}
	})

	t.Run("writes the unit into the work directory named after the case", func(t *testing.T) {
		// The script echoes its last argument so the source path the
		// compiler saw can be checked too.
		script := writeScript(t, scriptDir, "args.sh", `echo "$@" >&2
exit 1`)
		inv := NewInvoker(testConfig(script, 10))

		workDir := t.TempDir()
		unit := "int main() { return 0; }"
		result, err := inv.Compile(context.Background(), unit, workDir, "my_case")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantSource := filepath.Join(workDir, "my_case.cpp")
		if result.SourcePath != wantSource {
			t.Errorf("expected source path %s, got %s", wantSource, result.SourcePath)
		}
		data, err := os.ReadFile(wantSource)
		if err != nil {
			t.Fatalf("generated source not written: %v", err)
		}
		if string(data) != unit {
			t.Errorf("source file does not match unit text: %q", string(data))
		}
		// -o must point inside the work dir so no binary lands in cwd
		if !strings.Contains(result.Stderr, "-o "+filepath.Join(workDir, "my_case")) {
			t.Errorf("unexpected compiler arguments: %q", result.Stderr)
		}
	})

	t.Run("distinct cases use distinct files in a shared work dir", func(t *testing.T) {
		script := writeScript(t, scriptDir, "noop.sh", "exit 1")
		inv := NewInvoker(testConfig(script, 10))

		workDir := t.TempDir()
		first, err := inv.Compile(context.Background(), "// first", workDir, "case_a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := inv.Compile(context.Background(), "// second", workDir, "case_b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.SourcePath == second.SourcePath {
			t.Errorf("cases share a source file: %s", first.SourcePath)
		}
	})

	t.Run("times out a hung compiler", func(t *testing.T) {
		script := writeScript(t, scriptDir, "hang.sh", "sleep 30")
		inv := NewInvoker(testConfig(script, 1))

		result, err := inv.Compile(context.Background(), "int main() {}", t.TempDir(), "hung")
		if err != nil {
			t.Fatalf("expected a result, got error: %v", err)
		}
		if !result.TimedOut {
			t.Error("expected TimedOut to be set")
		}
	})

	t.Run("missing compiler binary is a tooling fault", func(t *testing.T) {
		inv := NewInvoker(testConfig("/nonexistent/avr-g++", 10))

		_, err := inv.Compile(context.Background(), "int main() {}", t.TempDir(), "any")
		var fault *ToolingFaultError
		if !errors.As(err, &fault) {
			t.Fatalf("expected ToolingFaultError, got %v", err)
		}
	})

	t.Run("unwritable work directory is a tooling fault", func(t *testing.T) {
		script := writeScript(t, scriptDir, "ok.sh", "exit 0")
		inv := NewInvoker(testConfig(script, 10))

		_, err := inv.Compile(context.Background(), "int main() {}", "/nonexistent/workdir", "any")
		var fault *ToolingFaultError
		if !errors.As(err, &fault) {
			t.Fatalf("expected ToolingFaultError, got %v", err)
		}
	})
}
