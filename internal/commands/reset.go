package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all budget data (irreversible)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm the wipe")

	return cmd
}

func runReset(force bool) error {
	if !force {
		return errors.New("refusing to reset without --force")
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.store.Reset(); err != nil {
		return err
	}

	fmt.Println("Ledger reset to first-run state")
	return nil
}
