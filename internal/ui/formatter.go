package ui

import (
	"fmt"

	"github.com/fatih/color"
	"nct/internal/config"
	"nct/internal/domain"
)

// Formatter formats and displays run output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintAnomalies prints one line per failed case. A diagnostic-mismatch
// failure also dumps the raw diagnostic stream for triage, untruncated.
func (f *Formatter) PrintAnomalies(outcomes []domain.Outcome) {
	for _, o := range outcomes {
		if o.Passed() {
			continue
		}
		color.Red("FAIL: %s: %s", o.CaseName, o.Explanation)
		if o.Diagnostics != "" {
			fmt.Print(o.Diagnostics)
			fmt.Println()
		}
	}
}

// PrintSummary prints the final summary line followed by a verdict.
func (f *Formatter) PrintSummary(summary domain.RunSummary) {
	fmt.Println()
	fmt.Printf("tests: %d  successes: %d  failures: %d\n", summary.Total, summary.Successes, summary.Failures)

	if summary.Total == 0 {
		color.Yellow("No cases found")
		return
	}
	if summary.Failures == 0 {
		color.Green("✓ All invariants enforced")
	} else {
		color.Red("✗ %d case(s) failed", summary.Failures)
	}
}

// PrintCaseList prints discovered cases with their backing files.
func (f *Formatter) PrintCaseList(caseList []domain.Case) {
	color.Green("Found %d case(s):\n", len(caseList))

	for i, c := range caseList {
		connector := "├──"
		if i == len(caseList)-1 {
			connector = "└──"
		}
		color.Cyan("%s %s", connector, c.Name)
		prefix := "│   "
		if i == len(caseList)-1 {
			prefix = "    "
		}
		fmt.Printf("%s%s\n", prefix, color.YellowString(c.FilePath))
	}
}

// PrintHistory prints past run summaries, newest first.
func (f *Formatter) PrintHistory(records []domain.RunRecord) {
	if len(records) == 0 {
		color.Yellow("No recorded runs")
		return
	}

	color.Cyan("Last %d run(s):\n", len(records))
	for _, r := range records {
		verdict := color.GreenString("✓")
		if r.Failures > 0 {
			verdict = color.RedString("✗")
		}
		fmt.Printf("%s %s  %s  tests: %d  successes: %d  failures: %d  (%.2fs)\n",
			verdict, r.Timestamp, r.Compiler, r.Total, r.Successes, r.Failures, r.Duration)
	}
}
