package main

import (
	"fmt"
	"os"

	"nct/internal/cli"
	"nct/internal/cli/commands"
	"nct/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "nct",
		Short:   "Negative-compilation test harness",
		Long:    `A negative-compilation test harness. Each case fragment is expected to violate a compile-time invariant of the library under test; nct verifies the compiler rejects it with the expected diagnostic rather than compiling it or failing for an unrelated reason.`,
		Version: version,
	}

	// Create initial config with defaults, nct.yaml and .env applied
	cfg, err := config.Load(config.Flags{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
