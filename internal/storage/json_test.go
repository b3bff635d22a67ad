package storage

import (
	"testing"
	"time"

	"nct/internal/config"
	"nct/internal/domain"
)

func tempStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return NewJSONStorage(cfg)
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	st := tempStorage(t)

	outcomes := []domain.Outcome{
		{CaseName: "out_of_bounds_literal_index", Verdict: domain.VerdictPass},
		{CaseName: "well_formed_access", Verdict: domain.VerdictFail, Explanation: "compiled successfully"},
		{CaseName: "unrelated_syntax_error", Verdict: domain.VerdictFail, Explanation: "no expected diagnostic found", Diagnostics: "error: expected ';'"},
	}
	summary := domain.RunSummary{Total: 3, Successes: 1, Failures: 2}

	if err := st.Save(outcomes, summary, 1500*time.Millisecond, "avr-g++ -std=gnu++11"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	t.Run("meta reflects the summary", func(t *testing.T) {
		if loaded.Meta.TotalCases != 3 || loaded.Meta.Successes != 1 || loaded.Meta.Failures != 2 {
			t.Errorf("unexpected meta: %+v", loaded.Meta)
		}
		if loaded.Meta.Compiler != "avr-g++ -std=gnu++11" {
			t.Errorf("unexpected compiler: %q", loaded.Meta.Compiler)
		}
	})

	t.Run("only failures land in details", func(t *testing.T) {
		if len(loaded.Details) != 2 {
			t.Fatalf("expected 2 details, got %d", len(loaded.Details))
		}
		for _, d := range loaded.Details {
			if d.Passed() {
				t.Errorf("passed case persisted as detail: %+v", d)
			}
		}
		if loaded.Details[1].Diagnostics != "error: expected ';'" {
			t.Errorf("diagnostics not preserved: %q", loaded.Details[1].Diagnostics)
		}
	})
}

func TestJSONStorage_SaveOutputRoundTrip(t *testing.T) {
	st := tempStorage(t)

	output := &domain.RunOutput{
		Meta: domain.RunMeta{TotalCases: 1, Failures: 1},
		Details: []domain.Outcome{
			{CaseName: "slice_overrun", Verdict: domain.VerdictFail, Explanation: "compiled successfully", Resolved: true},
		},
	}
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !loaded.Details[0].Resolved {
		t.Error("resolved mark not persisted")
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st := tempStorage(t)
	if _, err := st.Load(); err == nil {
		t.Error("expected error when no run has been saved")
	}
}
