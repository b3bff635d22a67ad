package storage

import (
	"time"

	"nct/internal/config"
	"nct/internal/domain"
)

// Storage persists and loads run results (e.g. for the failures viewer).
type Storage interface {
	Save(outcomes []domain.Outcome, summary domain.RunSummary, duration time.Duration, compilerCmd string) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolve-mark updates).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
