package commands

import (
	"github.com/spf13/cobra"
	"nct/internal/config"
	"nct/internal/history"
	"nct/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	ledger    *history.Ledger
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, ledger *history.Ledger, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		ledger:    ledger,
		formatter: formatter,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	records, err := hc.ledger.Recent(hc.config.Flags.Limit)
	if err != nil {
		return err
	}

	hc.formatter.PrintHistory(records)
	return nil
}
