package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the harness
type Config struct {
	// Project settings
	ProjectPath string
	CaseDir     string
	HeaderPath  string

	// Compiler settings
	Compiler           string
	StdFlag            string
	ExpectedDiagnostic string
	TimeoutSeconds     int

	// Output settings
	OutputJSONFile string
	OutputDir      string
	HistoryFile    string

	// Work directory handling
	KeepWork bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	CaseDir    string
	HeaderPath string
	Compiler   string
	StdFlag    string
	Expect     string
	Timeout    int
	NameFilter string
	KeepWork   bool
	NoHistory  bool
	Limit      int
}

// fileConfig is the shape of the optional nct.yaml file
type fileConfig struct {
	CaseDir    string `yaml:"case_dir"`
	HeaderPath string `yaml:"header"`
	Compiler   string `yaml:"compiler"`
	StdFlag    string `yaml:"std"`
	Expect     string `yaml:"expect"`
	Timeout    int    `yaml:"timeout"`
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:        ".",
		CaseDir:            DefaultCaseDir,
		HeaderPath:         DefaultHeaderPath,
		Compiler:           DefaultCompiler,
		StdFlag:            DefaultStdFlag,
		ExpectedDiagnostic: DefaultExpectedDiagnostic,
		TimeoutSeconds:     DefaultTimeoutSeconds,
		OutputJSONFile:     DefaultOutputJSONFile,
		OutputDir:          DefaultOutputDir,
		HistoryFile:        DefaultHistoryFile,
	}
}

// Load creates a config, applies the optional YAML file and .env overrides,
// then applies flags. Precedence: defaults < nct.yaml < environment < flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()

	if err := cfg.applyFile(filepath.Join(cfg.ProjectPath, DefaultConfigFile)); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.ApplyFlags(flags)

	return cfg, nil
}

// applyFile merges settings from the YAML config file, if it exists.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.CaseDir != "" {
		c.CaseDir = fc.CaseDir
	}
	if fc.HeaderPath != "" {
		c.HeaderPath = fc.HeaderPath
	}
	if fc.Compiler != "" {
		c.Compiler = fc.Compiler
	}
	if fc.StdFlag != "" {
		c.StdFlag = fc.StdFlag
	}
	if fc.Expect != "" {
		c.ExpectedDiagnostic = fc.Expect
	}
	if fc.Timeout > 0 {
		c.TimeoutSeconds = fc.Timeout
	}
	return nil
}

// applyEnv merges overrides from the environment, loading a .env file from
// the project directory first if one exists.
func (c *Config) applyEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if v := os.Getenv("NCT_CC"); v != "" {
		c.Compiler = v
	}
	if v := os.Getenv("NCT_CC_FLAG"); v != "" {
		c.StdFlag = v
	}
	if v := os.Getenv("NCT_EXPECT"); v != "" {
		c.ExpectedDiagnostic = v
	}
	if v := os.Getenv("NCT_CASE_DIR"); v != "" {
		c.CaseDir = v
	}
	if v := os.Getenv("NCT_HEADER"); v != "" {
		c.HeaderPath = v
	}
}

// ApplyFlags merges non-empty flag values into the config.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags

	if flags.CaseDir != "" {
		c.CaseDir = flags.CaseDir
	}
	if flags.HeaderPath != "" {
		c.HeaderPath = flags.HeaderPath
	}
	if flags.Compiler != "" {
		c.Compiler = flags.Compiler
	}
	if flags.StdFlag != "" {
		c.StdFlag = flags.StdFlag
	}
	if flags.Expect != "" {
		c.ExpectedDiagnostic = flags.Expect
	}
	if flags.Timeout > 0 {
		c.TimeoutSeconds = flags.Timeout
	}
	c.KeepWork = flags.KeepWork
}

// GetCaseDir returns the case directory, relative paths resolved against
// the project path.
func (c *Config) GetCaseDir() string {
	if filepath.IsAbs(c.CaseDir) {
		return c.CaseDir
	}
	return filepath.Join(c.ProjectPath, c.CaseDir)
}

// GetHeaderPath returns the header path as an absolute path so synthesized
// units compile regardless of the work directory location.
func (c *Config) GetHeaderPath() string {
	p := c.HeaderPath
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.ProjectPath, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetOutputPath returns the full path to the results JSON file.
// Resolves to an absolute path so run and failures always read/write the
// same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetHistoryPath returns the full path to the run-history database.
func (c *Config) GetHistoryPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputDir, c.HistoryFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// Timeout returns the per-invocation timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CompilerCommand returns the compiler invocation for display purposes.
func (c *Config) CompilerCommand() string {
	return c.Compiler + " " + c.StdFlag
}
