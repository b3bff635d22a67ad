package domain

import "time"

// InvocationResult captures one compiler subprocess run for one synthesized
// unit. Immutable once produced.
type InvocationResult struct {
	CaseName   string        // Case the unit was synthesized from
	ExitCode   int           // Compiler process exit code
	Stderr     string        // Full diagnostic stream, untruncated
	TimedOut   bool          // Whether the invocation hit the timeout
	Duration   time.Duration // Wall time of the subprocess
	SourcePath string        // Path of the generated source inside the work dir
}

// Verdict is the harness's judgement for one case.
type Verdict string

const (
	VerdictPass Verdict = "PASS"
	VerdictFail Verdict = "FAIL"
)

// Outcome is the classified result for one case.
type Outcome struct {
	CaseName    string  `json:"case_name"`
	Verdict     Verdict `json:"verdict"`
	Explanation string  `json:"explanation,omitempty"` // Why a case failed (empty on PASS)
	Diagnostics string  `json:"diagnostics,omitempty"` // Raw stderr, attached on diagnostic mismatch
	Resolved    bool    `json:"resolved,omitempty"`    // Triage mark set from the failures viewer
}

// Passed reports whether the outcome is a PASS.
func (o Outcome) Passed() bool {
	return o.Verdict == VerdictPass
}

// RunSummary holds the aggregate counts for one run.
// Total == Successes + Failures always holds.
type RunSummary struct {
	Total     int
	Successes int
	Failures  int
}

// Add accumulates one outcome into the summary.
func (s *RunSummary) Add(o Outcome) {
	s.Total++
	if o.Passed() {
		s.Successes++
	} else {
		s.Failures++
	}
}
