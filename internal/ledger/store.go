// Package ledger owns the authoritative budget state and its persistence.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/miobudget/miobudget/internal/category"
	"github.com/miobudget/miobudget/internal/id"
	"github.com/miobudget/miobudget/internal/model"
	"github.com/miobudget/miobudget/internal/money"
	"github.com/miobudget/miobudget/internal/snapshot"
	"github.com/miobudget/miobudget/internal/storage"
)

// DefaultDateFormat renders transaction dates the way the mobile app did
// (it-IT day/month/year).
const DefaultDateFormat = "02/01/2006"

// Store is the single source of truth for the ledger. All mutations flow
// through it and every successful mutation overwrites the full persisted
// document. Operations are not safe for concurrent use; the app is
// single-threaded by construction.
type Store struct {
	storage    storage.Store
	log        zerolog.Logger
	dateFormat string
	now        func() time.Time

	loaded bool
	state  model.LedgerState
}

// NewStore creates a Store persisting into st. Load must run before any
// other operation.
func NewStore(st storage.Store, log zerolog.Logger, dateFormat string) *Store {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	return &Store{
		storage:    st,
		log:        log,
		dateFormat: dateFormat,
		now:        time.Now,
	}
}

// Load reads the persisted ledger, falling back to the empty first-run state
// when nothing is stored or the stored document cannot be parsed. Load never
// fails hard; a broken document costs the old data, not the session.
func (s *Store) Load() model.LedgerState {
	s.state = model.Empty()

	data, ok, err := s.storage.Get(stateKey)
	switch {
	case err != nil:
		s.log.Error().Err(err).Msg("loading ledger state, starting from defaults")
	case ok:
		state, err := UnmarshalState(data)
		if err != nil {
			s.log.Error().Err(err).Msg("parsing ledger state, starting from defaults")
		} else {
			s.state = state
		}
	}

	s.loaded = true
	return s.state.Clone()
}

// CompleteOnboarding sets the initial budget from raw user input and marks
// onboarding done. Zero is rejected here, unlike UpdateBudget: the onboarding
// form requires a real starting figure.
func (s *Store) CompleteOnboarding(rawBudget string) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	budget, err := money.ParsePositive(rawBudget)
	if err != nil {
		return err
	}

	s.state.HasOnboarded = true
	s.state.BaseBudget = budget
	s.persist()
	return nil
}

// UpdateBudget replaces the base budget. Zero is accepted here even though
// onboarding rejects it; the original app behaves this way and the quirk is
// kept as-is.
func (s *Store) UpdateBudget(rawBudget string) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	budget, err := money.ParseBudget(rawBudget)
	if err != nil {
		return err
	}

	s.state.BaseBudget = budget
	s.persist()
	return nil
}

// AddTransaction validates the form input, prepends a new transaction and
// persists. The created transaction is returned so callers can reference its
// ID. Descriptions must be non-empty; the category is embedded by value so
// its display attributes are frozen at creation time.
func (s *Store) AddTransaction(rawAmount, description string, typ model.TransactionType, categoryID string) (model.Transaction, error) {
	if !s.loaded {
		return model.Transaction{}, ErrNotLoaded
	}
	amount, err := money.ParsePositive(rawAmount)
	if err != nil {
		return model.Transaction{}, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return model.Transaction{}, ErrEmptyDescription
	}
	if !typ.Valid() {
		return model.Transaction{}, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}
	cat, ok := category.Get(categoryID)
	if !ok {
		return model.Transaction{}, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}

	tx := model.Transaction{
		ID:          id.New(),
		Description: description,
		Amount:      amount.Round(2),
		Type:        typ,
		Category:    cat,
		Date:        s.now().Format(s.dateFormat),
	}

	// Newest first.
	s.state.Transactions = append([]model.Transaction{tx}, s.state.Transactions...)
	s.persist()
	return tx, nil
}

// DeleteTransaction removes the transaction with the given ID and persists
// the remaining list. Unknown IDs are a no-op, not an error.
func (s *Store) DeleteTransaction(txID string) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	for i, tx := range s.state.Transactions {
		if tx.ID == txID {
			s.state.Transactions = append(s.state.Transactions[:i], s.state.Transactions[i+1:]...)
			s.persist()
			return nil
		}
	}
	return nil
}

// Reset wipes the persisted record and returns to the first-run state.
// Irreversible.
func (s *Store) Reset() error {
	if !s.loaded {
		return ErrNotLoaded
	}
	s.state = model.Empty()
	if err := s.storage.Delete(stateKey); err != nil {
		s.log.Error().Err(err).Msg("clearing persisted ledger state")
	}
	return nil
}

// State returns a copy of the current ledger state.
func (s *Store) State() model.LedgerState {
	return s.state.Clone()
}

// Snapshot recomputes the derived view from the current state.
func (s *Store) Snapshot() snapshot.Snapshot {
	return snapshot.Compute(s.state.BaseBudget, s.state.Transactions)
}

// persist overwrites the full persisted document. Failures are logged and
// swallowed: the in-memory state stays authoritative for the session and the
// next successful write reconciles storage.
func (s *Store) persist() {
	data, err := MarshalState(s.state)
	if err != nil {
		s.log.Error().Err(err).Msg("encoding ledger state")
		return
	}
	if err := s.storage.Put(stateKey, data); err != nil {
		s.log.Error().Err(err).Msg("persisting ledger state")
	}
}
