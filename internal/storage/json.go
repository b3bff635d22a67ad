package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"nct/internal/domain"
)

// Save writes the run summary and the failed outcomes to the configured
// JSON output file. Passed cases carry no diagnostics worth keeping, so
// only failures land in the details array.
func (s *JSONStorage) Save(outcomes []domain.Outcome, summary domain.RunSummary, duration time.Duration, compilerCmd string) error {
	var failures []domain.Outcome
	for _, o := range outcomes {
		if !o.Passed() {
			failures = append(failures, o)
		}
	}

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalCases:      summary.Total,
			Successes:       summary.Successes,
			Failures:        summary.Failures,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Compiler:        compilerCmd,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}

	return s.SaveOutput(&output)
}

// Load reads the last run results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file (e.g. after
// toggling resolve marks in the viewer).
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
