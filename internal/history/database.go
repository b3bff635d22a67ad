package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"nct/internal/config"
	"nct/internal/domain"
)

// Ledger stores one row per harness run in a local sqlite database so
// trends (new failures, regressions) survive across runs.
type Ledger struct {
	config *config.Config
}

// NewLedger creates a new Ledger
func NewLedger(cfg *config.Config) *Ledger {
	return &Ledger{config: cfg}
}

func (l *Ledger) open() (*sql.DB, error) {
	path := l.config.GetHistoryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		compiler TEXT NOT NULL,
		total INTEGER NOT NULL,
		successes INTEGER NOT NULL,
		failures INTEGER NOT NULL,
		duration_seconds REAL NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}

	return db, nil
}

// Record appends one run to the ledger.
func (l *Ledger) Record(summary domain.RunSummary, duration time.Duration, compilerCmd string) error {
	db, err := l.open()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(
		`INSERT INTO runs (timestamp, compiler, total, successes, failures, duration_seconds)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		time.Now().Format(time.RFC3339),
		compilerCmd,
		summary.Total,
		summary.Successes,
		summary.Failures,
		duration.Seconds(),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first, up to limit rows.
func (l *Ledger) Recent(limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	db, err := l.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT id, timestamp, compiler, total, successes, failures, duration_seconds
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []domain.RunRecord
	for rows.Next() {
		var r domain.RunRecord
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Compiler, &r.Total, &r.Successes, &r.Failures, &r.Duration); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read run rows: %w", err)
	}
	return records, nil
}
