package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBudgetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "budget <amount>",
		Short: "Change the base budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBudget(args[0])
		},
	}
}

func runBudget(rawBudget string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireOnboarded(e); err != nil {
		return err
	}

	if err := e.store.UpdateBudget(rawBudget); err != nil {
		return err
	}

	fmt.Printf("Budget updated to %s\n", e.amount(e.store.State().BaseBudget))
	return nil
}
