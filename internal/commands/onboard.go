package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOnboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "onboard <budget>",
		Short: "Set the initial budget and unlock the dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnboard(args[0])
		},
	}
}

func runOnboard(rawBudget string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if e.store.State().HasOnboarded {
		return fmt.Errorf("already onboarded, use 'miobudget budget <amount>' to change the budget")
	}

	if err := e.store.CompleteOnboarding(rawBudget); err != nil {
		return err
	}

	fmt.Printf("Budget set to %s. Benvenuto!\n", e.amount(e.store.State().BaseBudget))
	return nil
}
