package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/miobudget/miobudget/internal/config"
	"github.com/miobudget/miobudget/internal/ledger"
	"github.com/miobudget/miobudget/internal/logging"
	"github.com/miobudget/miobudget/internal/storage"
)

// env bundles everything a command run needs. Close releases the storage
// backend.
type env struct {
	cfg   *config.Config
	store *ledger.Store
	db    storage.Store
}

func (e *env) Close() {
	_ = e.db.Close()
}

// openEnv resolves the data dir, loads config (defaults when the file is
// absent), opens the configured storage backend and loads the ledger.
func openEnv() (*env, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, err
	}

	db, err := openStorage(dir, cfg)
	if err != nil {
		return nil, err
	}

	store := ledger.NewStore(db, logging.NewConsole(cfg.Log.Level), cfg.Display.DateFormat)
	store.Load()

	return &env{cfg: cfg, store: store, db: db}, nil
}

func openStorage(dir string, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "", config.BackendFile:
		return storage.NewFileStore(filepath.Join(dir, "data"))
	case config.BackendSQLite:
		return storage.NewSQLiteStore(filepath.Join(dir, cfg.Storage.Path))
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// requireOnboarded gates the dashboard commands behind the one-time
// onboarding flow.
func requireOnboarded(e *env) error {
	if !e.store.State().HasOnboarded {
		return errors.New("no budget set yet, run 'miobudget onboard <amount>' first")
	}
	return nil
}

// amount renders a decimal with the configured currency symbol.
func (e *env) amount(d decimal.Decimal) string {
	return e.cfg.Display.CurrencySymbol + " " + d.StringFixed(2)
}
