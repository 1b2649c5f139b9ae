package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(args[0])
		},
	}
}

func runRm(txID string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireOnboarded(e); err != nil {
		return err
	}

	found := false
	for _, tx := range e.store.State().Transactions {
		if tx.ID == txID {
			found = true
			break
		}
	}

	// Deleting an unknown id is a no-op success, not an error.
	if err := e.store.DeleteTransaction(txID); err != nil {
		return err
	}

	if found {
		fmt.Printf("Removed transaction %s\n", txID)
	} else {
		fmt.Printf("No transaction with id %s, nothing to do\n", txID)
	}
	return nil
}
