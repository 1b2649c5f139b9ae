package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the budget dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary()
		},
	}
}

func runSummary() error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := requireOnboarded(e); err != nil {
		return err
	}

	state := e.store.State()
	snap := e.store.Snapshot()

	fmt.Printf("Budget:   %s\n", e.amount(state.BaseBudget))
	fmt.Printf("Balance:  %s\n", e.amount(snap.Balance))
	fmt.Printf("Income:   %s\n", e.amount(snap.IncomeTotal))
	fmt.Printf("Expenses: %s\n", e.amount(snap.ExpenseTotal))
	fmt.Printf("Used:     %s%% of budget (%s)\n", snap.SpendingPercent.StringFixed(0), spendingLabel(snap.SpendingPercent))
	fmt.Printf("Transactions: %d\n", len(state.Transactions))
	return nil
}

// spendingLabel mirrors the progress-bar color thresholds of the mobile app.
func spendingLabel(percent decimal.Decimal) string {
	switch {
	case percent.LessThan(decimal.NewFromInt(50)):
		return "ok"
	case percent.LessThan(decimal.NewFromInt(80)):
		return "warning"
	default:
		return "high"
	}
}
