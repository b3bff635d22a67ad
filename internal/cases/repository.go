package cases

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"nct/internal/domain"
)

// CaseNotFoundError reports a case name with no backing fragment file.
type CaseNotFoundError struct {
	Name string
}

func (e *CaseNotFoundError) Error() string {
	return fmt.Sprintf("case not found: %s", e.Name)
}

// DuplicateCaseError reports two fragment files collapsing to one derived
// case name.
type DuplicateCaseError struct {
	Name  string
	First string
	Other string
}

func (e *DuplicateCaseError) Error() string {
	return fmt.Sprintf("duplicate case name %q: %s and %s", e.Name, e.First, e.Other)
}

// Repository enumerates and loads test cases from a case directory.
// One file per case; the case name is the file's base name truncated at the
// first dot, so "out_of_bounds.cpp" becomes "out_of_bounds".
type Repository struct {
	dir   string
	files map[string]string // case name -> backing file path
}

// NewRepository creates a Repository over the given case directory.
func NewRepository(dir string) *Repository {
	return &Repository{dir: filepath.Clean(dir)}
}

// DeriveName returns the case name for a fragment file name.
func DeriveName(fileName string) string {
	if i := strings.Index(fileName, "."); i >= 0 {
		return fileName[:i]
	}
	return fileName
}

// List discovers all cases and returns their names sorted. Discovery is a
// flat, non-recursive scan: one file per case, subdirectories and hidden
// files are skipped. Two files collapsing to the same name is a hard error.
func (r *Repository) List() ([]string, error) {
	info, err := os.Stat(r.dir)
	if err != nil {
		return nil, fmt.Errorf("case directory does not exist: %s", r.dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("case path is not a directory: %s", r.dir)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read case directory: %w", err)
	}

	r.files = make(map[string]string)
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := DeriveName(entry.Name())
		if name == "" {
			continue
		}
		path := filepath.Join(r.dir, entry.Name())
		if first, ok := r.files[name]; ok {
			return nil, &DuplicateCaseError{Name: name, First: first, Other: path}
		}
		r.files[name] = path
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// Cases returns the discovered cases with their backing files, in name
// order. List must have been called first.
func (r *Repository) Cases() []domain.Case {
	var out []domain.Case
	for name, path := range r.files {
		out = append(out, domain.Case{Name: name, FilePath: path})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LoadSource returns the raw fragment text for a case name.
func (r *Repository) LoadSource(name string) (string, error) {
	path, ok := r.files[name]
	if !ok {
		return "", &CaseNotFoundError{Name: name}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read case %s: %w", name, err)
	}
	return string(data), nil
}
