package config

const (
	// DefaultCaseDir is the default directory holding case fragments
	DefaultCaseDir = "test/cases"
	// DefaultHeaderPath is the default path of the header under test
	DefaultHeaderPath = "array.h"
	// DefaultCompiler is the default compiler binary
	DefaultCompiler = "avr-g++"
	// DefaultStdFlag is the default language-standard flag
	DefaultStdFlag = "-std=gnu++11"
	// DefaultExpectedDiagnostic is the substring a correctly rejected case
	// must produce in its diagnostic stream
	DefaultExpectedDiagnostic = "static assertion failed"
	// DefaultTimeoutSeconds bounds one compiler invocation
	DefaultTimeoutSeconds = 60
	// DefaultOutputJSONFile is the default results file name
	DefaultOutputJSONFile = "run-results.json"
	// DefaultOutputDir is the default output directory
	DefaultOutputDir = "storage"
	// DefaultHistoryFile is the default run-history database file name
	DefaultHistoryFile = "history.db"
	// DefaultConfigFile is the optional YAML config file name
	DefaultConfigFile = "nct.yaml"
)
