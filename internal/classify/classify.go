// Package classify decides PASS/FAIL for one compiler invocation.
package classify

import (
	"strings"

	"nct/internal/domain"
)

// Explanations attached to failed outcomes.
const (
	ExplainCompiledOK   = "compiled successfully"
	ExplainNoDiagnostic = "no expected diagnostic found"
	ExplainTimedOut     = "compiler invocation timed out"
)

// Classifier applies the two-gate policy: a case passes only when the
// compiler rejected the unit AND the diagnostic stream contains the
// expected substring.
type Classifier struct {
	expected string
}

// NewClassifier creates a Classifier looking for the given diagnostic
// substring.
func NewClassifier(expected string) *Classifier {
	return &Classifier{expected: expected}
}

// Classify turns one invocation result into an outcome.
//
// The order of the gates matters: a unit that compiled is a failure no
// matter what the diagnostic stream says, because the whole point of a case
// is that it must not compile. A unit rejected for the wrong reason gets
// the full diagnostic stream attached for triage.
func (c *Classifier) Classify(result domain.InvocationResult) domain.Outcome {
	if result.TimedOut {
		return domain.Outcome{
			CaseName:    result.CaseName,
			Verdict:     domain.VerdictFail,
			Explanation: ExplainTimedOut,
		}
	}

	if result.ExitCode == 0 {
		return domain.Outcome{
			CaseName:    result.CaseName,
			Verdict:     domain.VerdictFail,
			Explanation: ExplainCompiledOK,
		}
	}

	if !strings.Contains(result.Stderr, c.expected) {
		return domain.Outcome{
			CaseName:    result.CaseName,
			Verdict:     domain.VerdictFail,
			Explanation: ExplainNoDiagnostic,
			Diagnostics: result.Stderr,
		}
	}

	return domain.Outcome{
		CaseName: result.CaseName,
		Verdict:  domain.VerdictPass,
	}
}
