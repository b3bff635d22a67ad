package cases

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		cases    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			cases:    []string{"out_of_bounds_literal_index", "well_formed_access", "slice_overrun"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			cases:    []string{"out_of_bounds_literal_index", "well_formed_access", "slice_overrun"},
			pattern:  "out_of_bounds*",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			cases:    []string{"slice_overrun", "cslice_overrun", "well_formed_access"},
			pattern:  "*slice*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			cases:    []string{"out_of_bounds_literal_index", "well_formed_access"},
			pattern:  "bounds",
			expected: 1,
		},
		{
			name:     "no matches",
			cases:    []string{"out_of_bounds_literal_index", "well_formed_access"},
			pattern:  "*nonexistent*",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.cases, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty case list", func(t *testing.T) {
		result := filter.FilterByName([]string{}, "*bounds*")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("pattern with multiple wildcards", func(t *testing.T) {
		names := []string{"slice_const_index", "slice_literal_index", "array_overrun"}
		result := filter.FilterByName(names, "slice*index")
		if len(result) < 2 {
			t.Errorf("expected at least 2 matches, got %d", len(result))
		}
	})
}
