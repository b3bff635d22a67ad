package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"nct/internal/cases"
	"nct/internal/config"
	"nct/internal/domain"
	"nct/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *cases.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *cases.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	repo := cases.NewRepository(lc.config.GetCaseDir())
	names, err := repo.List()
	if err != nil {
		return fmt.Errorf("case discovery failed: %w", err)
	}

	// Filter cases
	names = lc.filter.FilterByName(names, lc.config.Flags.NameFilter)

	if len(names) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	keep := make(map[string]bool, len(names))
	for _, name := range names {
		keep[name] = true
	}
	var caseList []domain.Case
	for _, c := range repo.Cases() {
		if keep[c.Name] {
			caseList = append(caseList, c)
		}
	}

	lc.formatter.PrintCaseList(caseList)
	return nil
}
