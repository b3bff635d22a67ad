package cases

import (
	"path/filepath"
	"strings"
)

// Filter filters case names by pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters case names by pattern using wildcard matching.
// Supports patterns like "out_of_bounds*" or "*slice*"; a pattern without
// wildcards is a substring match.
func (f *Filter) FilterByName(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	var filtered []string

	for _, name := range names {
		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			filtered = append(filtered, name)
			continue
		}

		// If the pattern contains wildcards but filepath.Match didn't match,
		// fall back to matching every non-empty part between wildcards
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allPartsMatch := true
			hasNonEmptyPart := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasNonEmptyPart = true
				if !strings.Contains(name, part) {
					allPartsMatch = false
					break
				}
			}
			if allPartsMatch && hasNonEmptyPart {
				filtered = append(filtered, name)
			}
			continue
		}

		// No wildcards: simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(name, pattern) {
			filtered = append(filtered, name)
		}
	}

	return filtered
}
