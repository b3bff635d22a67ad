package cli

import "nct/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		CaseDir:    f.CaseDir,
		HeaderPath: f.HeaderPath,
		Compiler:   f.Compiler,
		StdFlag:    f.StdFlag,
		Expect:     f.Expect,
		Timeout:    f.Timeout,
		NameFilter: f.NameFilter,
		KeepWork:   f.KeepWork,
		NoHistory:  f.NoHistory,
		Limit:      f.Limit,
	}
}
