// Package commands wires the CLI onto the ledger store. The CLI plays the
// role of the UI collaborator: it invokes store operations and renders the
// resulting snapshot.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/miobudget/miobudget/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "miobudget",
		Short:   "Personal budget ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newOnboardCommand(),
		newBudgetCommand(),
		newAddCommand(),
		newRmCommand(),
		newListCommand(),
		newSummaryCommand(),
		newResetCommand(),
	)

	return rootCmd
}
