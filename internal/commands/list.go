package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/miobudget/miobudget/internal/model"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireOnboarded(e); err != nil {
		return err
	}

	state := e.store.State()
	if len(state.Transactions) == 0 {
		fmt.Println("No transactions yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION\tID")
	for _, tx := range state.Transactions {
		sign := "-"
		if tx.Type == model.TypeIncome {
			sign = "+"
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
			tx.Date, sign, e.amount(tx.Amount), tx.Category.Name, tx.Description, tx.ID)
	}
	return w.Flush()
}
