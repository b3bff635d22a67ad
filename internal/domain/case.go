package domain

// Case represents one negative-compilation scenario discovered in the case
// directory.
type Case struct {
	Name     string // Derived case name (file base name up to the first dot)
	FilePath string // Full path to the backing fragment file
}
