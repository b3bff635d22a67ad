// Package harness drives the whole run: load, synthesize, compile,
// classify, tally.
package harness

import (
	"context"
	"fmt"

	"nct/internal/cases"
	"nct/internal/classify"
	"nct/internal/compiler"
	"nct/internal/domain"
	"nct/internal/synth"
	"nct/internal/ui"
)

// Fault is a run-level failure of the harness itself (missing compiler,
// unwritable work directory). It aborts the run immediately, unlike
// per-case problems which become FAIL outcomes.
type Fault struct {
	CaseName string
	Err      error
}

func (f *Fault) Error() string {
	if f.CaseName != "" {
		return fmt.Sprintf("run aborted at case %s: %v", f.CaseName, f.Err)
	}
	return fmt.Sprintf("run aborted: %v", f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Runner orchestrates one sequential harness run.
type Runner struct {
	repo       *cases.Repository
	compiler   compiler.Compiler
	classifier *classify.Classifier
	headerPath string
	progress   *ui.ProgressBar
}

// NewRunner creates a new Runner
func NewRunner(repo *cases.Repository, comp compiler.Compiler, cls *classify.Classifier, headerPath string) *Runner {
	return &Runner{
		repo:       repo,
		compiler:   comp,
		classifier: cls,
		headerPath: headerPath,
	}
}

// SetProgress sets the progress bar for the run
func (r *Runner) SetProgress(progress *ui.ProgressBar) {
	r.progress = progress
}

// Run processes the given cases one at a time: load the fragment,
// synthesize a unit, compile it, classify the result, accumulate the
// summary. Every case yields exactly one outcome. A case whose fragment
// cannot be loaded is a FAIL outcome for that case and the run continues;
// a tooling fault from the compiler aborts the run with a *Fault.
func (r *Runner) Run(ctx context.Context, names []string, workDir string) ([]domain.Outcome, domain.RunSummary, error) {
	outcomes := make([]domain.Outcome, 0, len(names))
	var summary domain.RunSummary

	for _, name := range names {
		outcome, err := r.runCase(ctx, name, workDir)
		if err != nil {
			return outcomes, summary, &Fault{CaseName: name, Err: err}
		}
		outcomes = append(outcomes, outcome)
		summary.Add(outcome)
		if r.progress != nil {
			r.progress.Update(summary.Successes, summary.Failures)
		}
	}

	if r.progress != nil {
		r.progress.Finish()
	}
	return outcomes, summary, nil
}

func (r *Runner) runCase(ctx context.Context, name, workDir string) (domain.Outcome, error) {
	fragment, err := r.repo.LoadSource(name)
	if err != nil {
		return domain.Outcome{
			CaseName:    name,
			Verdict:     domain.VerdictFail,
			Explanation: fmt.Sprintf("failed to load case source: %v", err),
		}, nil
	}

	unit := synth.Synthesize(fragment, r.headerPath)

	result, err := r.compiler.Compile(ctx, unit, workDir, name)
	if err != nil {
		return domain.Outcome{}, err
	}

	return r.classifier.Classify(result), nil
}
