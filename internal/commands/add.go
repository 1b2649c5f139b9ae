package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miobudget/miobudget/internal/category"
	"github.com/miobudget/miobudget/internal/model"
)

func newAddCommand() *cobra.Command {
	var description string
	var txType string
	var categoryID string

	categoryIDs := make([]string, 0, 6)
	for _, c := range category.All() {
		categoryIDs = append(categoryIDs, c.ID)
	}

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a new transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args[0], description, txType, categoryID)
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "transaction description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringVar(&txType, "type", string(model.TypeExpense), "income or expense")
	cmd.Flags().StringVar(&categoryID, "category", category.Default().ID, "one of: "+strings.Join(categoryIDs, ", "))

	return cmd
}

func runAdd(rawAmount, description, txType, categoryID string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireOnboarded(e); err != nil {
		return err
	}

	tx, err := e.store.AddTransaction(rawAmount, description, model.TransactionType(txType), categoryID)
	if err != nil {
		return err
	}

	sign := "-"
	if tx.Type == model.TypeIncome {
		sign = "+"
	}
	fmt.Printf("Added %s %s  %s (%s)  id=%s\n", sign, e.amount(tx.Amount), tx.Description, tx.Category.Name, tx.ID)
	return nil
}
