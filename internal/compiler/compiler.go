package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"nct/internal/config"
	"nct/internal/domain"
)

// Compiler compiles one synthesized unit and reports how the compiler
// reacted. A returned error means the harness itself could not run the
// compiler (tooling fault); a rejected unit is a normal result, not an
// error.
type Compiler interface {
	Compile(ctx context.Context, unitText, workDir, caseName string) (domain.InvocationResult, error)
}

// ToolingFaultError wraps a failure to launch or feed the external
// compiler: missing binary, unwritable work directory. These indicate a
// misconfigured harness rather than a misbehaving case.
type ToolingFaultError struct {
	Op  string
	Err error
}

func (e *ToolingFaultError) Error() string {
	return fmt.Sprintf("tooling fault: %s: %v", e.Op, e.Err)
}

func (e *ToolingFaultError) Unwrap() error {
	return e.Err
}

// Invoker runs the configured external compiler on synthesized units.
type Invoker struct {
	config *config.Config
}

// NewInvoker creates a new Invoker
func NewInvoker(cfg *config.Config) *Invoker {
	return &Invoker{config: cfg}
}

// Compile writes unitText to <workDir>/<caseName>.cpp and invokes the
// external compiler as
//
//	<binary> <stdFlag> -o <workDir>/<caseName> <sourcePath>
//
// blocking until the subprocess exits or the configured timeout elapses.
// Stderr is captured in full; stdout is not examined. The output binary is
// directed into the work directory so a successful compile leaves nothing
// behind in the current directory.
func (inv *Invoker) Compile(ctx context.Context, unitText, workDir, caseName string) (domain.InvocationResult, error) {
	sourcePath := filepath.Join(workDir, caseName+".cpp")
	if err := os.WriteFile(sourcePath, []byte(unitText), 0644); err != nil {
		return domain.InvocationResult{}, &ToolingFaultError{Op: "write source", Err: err}
	}

	cctx, cancel := context.WithTimeout(ctx, inv.config.Timeout())
	defer cancel()

	outPath := filepath.Join(workDir, caseName)
	cmd := exec.CommandContext(cctx, inv.config.Compiler, inv.config.StdFlag, "-o", outPath, sourcePath)
	cmd.Env = os.Environ()

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	result := domain.InvocationResult{
		CaseName:   caseName,
		Stderr:     stderr.String(),
		Duration:   duration,
		SourcePath: sourcePath,
	}

	if cctx.Err() == context.DeadlineExceeded {
		result.TimedOut = true
		result.ExitCode = -1
		return result, nil
	}

	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	// Not an exit status: the process never ran (binary missing, permission
	// denied, work dir gone). Misconfigured harness, abort the run.
	return domain.InvocationResult{}, &ToolingFaultError{Op: "invoke " + inv.config.Compiler, Err: err}
}
