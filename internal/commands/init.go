package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/miobudget/miobudget/internal/config"
)

func newInitCommand() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the miobudget data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(backend)
		},
	}

	cmd.Flags().StringVar(&backend, "backend", config.BackendFile, "storage backend (file, sqlite or memory)")

	return cmd
}

func runInit(backend string) error {
	switch backend {
	case config.BackendFile, config.BackendSQLite, config.BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", backend)
	}

	dir, err := config.DataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("already initialized: %s exists", path)
	}

	cfg := config.Default()
	cfg.Storage.Backend = backend
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Initialized miobudget at %s (backend: %s)\n", dir, backend)
	return nil
}
