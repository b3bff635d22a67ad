package domain

// RunMeta contains metadata about one harness run.
type RunMeta struct {
	TotalCases      int     `json:"total_cases"`
	Successes       int     `json:"successes"`
	Failures        int     `json:"failures"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Compiler        string  `json:"compiler"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted form of one run: the meta block plus
// the failed outcomes with their diagnostics.
type RunOutput struct {
	Meta    RunMeta   `json:"meta"`
	Details []Outcome `json:"details"`
}

// RunRecord is one row of the run-history ledger.
type RunRecord struct {
	ID        int64
	Timestamp string
	Compiler  string
	Total     int
	Successes int
	Failures  int
	Duration  float64 // seconds
}
