package commands

import (
	"fmt"
	"os"
	"time"

	"nct/internal/cases"
	"nct/internal/classify"
	"nct/internal/compiler"
	"nct/internal/config"
	"nct/internal/harness"
	"nct/internal/history"
	"nct/internal/storage"
	"nct/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	filter    *cases.Filter
	compiler  compiler.Compiler
	storage   storage.Storage
	formatter *ui.Formatter
	ledger    *history.Ledger
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	filter *cases.Filter,
	comp compiler.Compiler,
	st storage.Storage,
	formatter *ui.Formatter,
	ledger *history.Ledger,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		filter:    filter,
		compiler:  comp,
		storage:   st,
		formatter: formatter,
		ledger:    ledger,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Discover cases
	repo := cases.NewRepository(rc.config.GetCaseDir())
	names, err := repo.List()
	if err != nil {
		return fmt.Errorf("case discovery failed: %w", err)
	}

	// Filter cases
	names = rc.filter.FilterByName(names, rc.config.Flags.NameFilter)

	// Acquire a scratch work directory for this run, cleaned up on every
	// exit path unless --keep-work is set
	workDir, err := os.MkdirTemp("", "nct-work-*")
	if err != nil {
		return fmt.Errorf("create work directory: %w", err)
	}
	if rc.config.KeepWork {
		color.Yellow("Keeping work directory: %s", workDir)
	} else {
		defer os.RemoveAll(workDir)
	}

	classifier := classify.NewClassifier(rc.config.ExpectedDiagnostic)
	runner := harness.NewRunner(repo, rc.compiler, classifier, rc.config.GetHeaderPath())

	if len(names) > 0 {
		runner.SetProgress(ui.NewProgressBar(len(names)))
	}

	// Execute cases
	start := time.Now()
	outcomes, summary, err := runner.Run(cmd.Context(), names, workDir)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	// Report anomalies
	rc.formatter.PrintAnomalies(outcomes)

	// Save results for the failures viewer
	if err := rc.storage.Save(outcomes, summary, duration, rc.config.CompilerCommand()); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	// Record the run in the history ledger
	if !rc.config.Flags.NoHistory {
		if err := rc.ledger.Record(summary, duration, rc.config.CompilerCommand()); err != nil {
			color.Yellow("Warning: could not record run history: %v", err)
		}
	}

	rc.formatter.PrintSummary(summary)

	if summary.Failures > 0 {
		return fmt.Errorf("%d of %d case(s) failed", summary.Failures, summary.Total)
	}
	return nil
}
