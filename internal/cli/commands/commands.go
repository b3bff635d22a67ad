package commands

import (
	"nct/internal/cases"
	"nct/internal/cli"
	"nct/internal/compiler"
	"nct/internal/config"
	"nct/internal/history"
	"nct/internal/storage"
	"nct/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	filter := cases.NewFilter()
	invoker := compiler.NewInvoker(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	ledger := history.NewLedger(cfg)
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, filter, invoker, jsonStorage, formatter, ledger),
		List:     NewListCommand(cfg, filter, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer),
		History:  NewHistoryCommand(cfg, ledger, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Compile every case and verify it fails for the expected reason",
		Long:  "Discover case fragments, wrap each in the fixed scaffolding, invoke the compiler and verify the unit is rejected with the expected diagnostic",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.CaseDir, "case-dir", "c", "", "Directory containing case fragments")
	runCmd.Flags().StringVar(&flags.HeaderPath, "header", "", "Path to the header under test")
	runCmd.Flags().StringVar(&flags.Compiler, "compiler", "", "Compiler binary to invoke")
	runCmd.Flags().StringVar(&flags.StdFlag, "std", "", "Language-standard flag passed to the compiler")
	runCmd.Flags().StringVar(&flags.Expect, "expect", "", "Diagnostic substring a rejected case must produce")
	runCmd.Flags().IntVar(&flags.Timeout, "timeout", 0, "Per-invocation timeout in seconds")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'out_of_bounds*' or '*slice*')")
	runCmd.Flags().BoolVar(&flags.KeepWork, "keep-work", false, "Keep the scratch work directory after the run")
	runCmd.Flags().BoolVar(&flags.NoHistory, "no-history", false, "Skip recording this run in the history database")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered cases",
		Long:  "Scan the case directory and list all cases without compiling them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.CaseDir, "case-dir", "c", "", "Directory containing case fragments")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'out_of_bounds*' or '*slice*')")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failed cases interactively",
		Long:  "Display failed cases from the last run, with full compiler diagnostics, in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show past run summaries",
		Long:  "Print summaries of past runs recorded in the history database, newest first",
		RunE:  c.History.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 10, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
