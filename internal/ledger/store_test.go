package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miobudget/miobudget/internal/model"
	"github.com/miobudget/miobudget/internal/money"
	"github.com/miobudget/miobudget/internal/storage"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	store := NewStore(mem, zerolog.Nop(), "")
	store.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	store.Load()
	return store, mem
}

// requireEqualStates compares two states through the persisted document so
// decimal scale differences do not matter.
func requireEqualStates(t *testing.T, want, got model.LedgerState) {
	t.Helper()
	wantDoc, err := MarshalState(want)
	require.NoError(t, err)
	gotDoc, err := MarshalState(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantDoc), string(gotDoc))
}

func TestLoad_FirstRun(t *testing.T) {
	store, _ := newTestStore(t)

	state := store.State()
	assert.False(t, state.HasOnboarded)
	assert.True(t, state.BaseBudget.IsZero())
	assert.Empty(t, state.Transactions)
}

func TestLoad_MalformedFallsBackToDefaults(t *testing.T) {
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Put("ledger", []byte("{not json")))

	store := NewStore(mem, zerolog.Nop(), "")
	state := store.Load()

	assert.False(t, state.HasOnboarded)
	assert.True(t, state.BaseBudget.IsZero())
	assert.Empty(t, state.Transactions)
}

func TestOperationsBeforeLoad(t *testing.T) {
	store := NewStore(storage.NewMemoryStore(), zerolog.Nop(), "")

	assert.ErrorIs(t, store.CompleteOnboarding("100"), ErrNotLoaded)
	assert.ErrorIs(t, store.UpdateBudget("100"), ErrNotLoaded)
	_, err := store.AddTransaction("10", "caffè", model.TypeExpense, "food")
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.ErrorIs(t, store.DeleteTransaction("x"), ErrNotLoaded)
	assert.ErrorIs(t, store.Reset(), ErrNotLoaded)
}

func TestCompleteOnboarding(t *testing.T) {
	// Comma and dot input must land on the same budget.
	for _, input := range []string{"1.000,50", "1000.50"} {
		store, mem := newTestStore(t)
		require.NoError(t, store.CompleteOnboarding(input))

		state := store.State()
		assert.True(t, state.HasOnboarded, "input: %q", input)
		assert.True(t, state.BaseBudget.Equal(dec("1000.50")), "input: %q", input)

		// Persisted immediately.
		data, ok, err := mem.Get("ledger")
		require.NoError(t, err)
		require.True(t, ok)
		persisted, err := UnmarshalState(data)
		require.NoError(t, err)
		assert.True(t, persisted.HasOnboarded)
		assert.True(t, persisted.BaseBudget.Equal(dec("1000.50")))
	}
}

func TestCompleteOnboarding_Rejections(t *testing.T) {
	store, mem := newTestStore(t)

	for _, input := range []string{"0", "-5", "abc", ""} {
		err := store.CompleteOnboarding(input)
		require.Error(t, err, "input: %q", input)
	}

	// State untouched, nothing persisted.
	assert.False(t, store.State().HasOnboarded)
	_, ok, err := mem.Get("ledger")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateBudget_ZeroAccepted(t *testing.T) {
	// Onboarding rejects zero but a later update accepts it. The asymmetry is
	// inherited from the original app and deliberate.
	store, _ := newTestStore(t)
	require.NoError(t, store.CompleteOnboarding("500"))

	require.ErrorIs(t, store.CompleteOnboarding("0"), money.ErrNotPositive)
	require.NoError(t, store.UpdateBudget("0"))

	state := store.State()
	assert.True(t, state.BaseBudget.IsZero())
	assert.True(t, state.HasOnboarded)
}

func TestUpdateBudget_Rejections(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.CompleteOnboarding("500"))

	assert.ErrorIs(t, store.UpdateBudget("-1"), money.ErrNegative)
	assert.ErrorIs(t, store.UpdateBudget("much"), money.ErrNotANumber)
	assert.True(t, store.State().BaseBudget.Equal(dec("500")))
}

func TestAddTransaction(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.CompleteOnboarding("1000"))

	tx, err := store.AddTransaction("12,5", "spesa al mercato", model.TypeExpense, "food")
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "12.50", tx.Amount.StringFixed(2))
	assert.Equal(t, model.TypeExpense, tx.Type)
	assert.Equal(t, "Cibo", tx.Category.Name)
	assert.Equal(t, "31/08/2026", tx.Date)

	state := store.State()
	require.Len(t, state.Transactions, 1)
	assert.Equal(t, tx.ID, state.Transactions[0].ID)
}

func TestAddTransaction_NewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.CompleteOnboarding("1000"))

	first, err := store.AddTransaction("10", "prima", model.TypeExpense, "food")
	require.NoError(t, err)
	second, err := store.AddTransaction("20", "seconda", model.TypeIncome, "salary")
	require.NoError(t, err)

	state := store.State()
	require.Len(t, state.Transactions, 2)
	assert.Equal(t, second.ID, state.Transactions[0].ID)
	assert.Equal(t, first.ID, state.Transactions[1].ID)
}

func TestAddTransaction_Rejections(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.CompleteOnboarding("1000"))
	before := store.State()

	tests := []struct {
		name       string
		amount     string
		desc       string
		typ        model.TransactionType
		categoryID string
		wantErr    error
	}{
		{"zero amount", "0", "x", model.TypeExpense, "food", money.ErrNotPositive},
		{"negative amount", "-5", "x", model.TypeExpense, "food", money.ErrNotPositive},
		{"non-numeric amount", "dieci", "x", model.TypeExpense, "food", money.ErrNotANumber},
		{"empty description", "10", "   ", model.TypeExpense, "food", ErrEmptyDescription},
		{"unknown type", "10", "x", "transfer", "food", ErrUnknownType},
		{"unknown category", "10", "x", model.TypeExpense, "rent", ErrUnknownCategory},
	}
	for _, tt := range tests {
		_, err := store.AddTransaction(tt.amount, tt.desc, tt.typ, tt.categoryID)
		require.Error(t, err, tt.name)
		assert.ErrorIs(t, err, tt.wantErr, tt.name)
	}

	// Every rejection left the state exactly as it was.
	requireEqualStates(t, before, store.State())
}

func TestAddThenDelete_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.CompleteOnboarding("1000"))
	_, err := store.AddTransaction("5", "esistente", model.TypeExpense, "other")
	require.NoError(t, err)

	before := store.State()

	tx, err := store.AddTransaction("99.99", "temporanea", model.TypeIncome, "salary")
	require.NoError(t, err)
	require.NoError(t, store.DeleteTransaction(tx.ID))

	requireEqualStates(t, before, store.State())
}

func TestDeleteTransaction_Unknown(t *testing.T) {
	store, mem := newTestStore(t)
	require.NoError(t, store.CompleteOnboarding("1000"))
	_, err := store.AddTransaction("5", "resta", model.TypeExpense, "food")
	require.NoError(t, err)

	dataBefore, _, err := mem.Get("ledger")
	require.NoError(t, err)

	require.NoError(t, store.DeleteTransaction("no-such-id"))

	require.Len(t, store.State().Transactions, 1)
	dataAfter, _, err := mem.Get("ledger")
	require.NoError(t, err)
	assert.Equal(t, dataBefore, dataAfter, "no-op delete must not rewrite storage")
}

func TestPersistRoundTrip(t *testing.T) {
	store, mem := newTestStore(t)
	require.NoError(t, store.CompleteOnboarding("1.500,00"))
	_, err := store.AddTransaction("250", "affitto", model.TypeExpense, "other")
	require.NoError(t, err)
	_, err = store.AddTransaction("2.000,00", "stipendio", model.TypeIncome, "salary")
	require.NoError(t, err)

	// A fresh store over the same storage reproduces the state exactly.
	reloaded := NewStore(mem, zerolog.Nop(), "")
	reloaded.Load()

	requireEqualStates(t, store.State(), reloaded.State())
}

func TestReset(t *testing.T) {
	store, mem := newTestStore(t)
	require.NoError(t, store.CompleteOnboarding("1000"))
	_, err := store.AddTransaction("10", "sparisce", model.TypeExpense, "food")
	require.NoError(t, err)

	require.NoError(t, store.Reset())

	state := store.State()
	assert.False(t, state.HasOnboarded)
	assert.True(t, state.BaseBudget.IsZero())
	assert.Empty(t, state.Transactions)

	_, ok, err := mem.Get("ledger")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSnapshot(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.CompleteOnboarding("1000.00"))
	_, err := store.AddTransaction("250.00", "cena fuori", model.TypeExpense, "food")
	require.NoError(t, err)
	_, err = store.AddTransaction("500.00", "bonus", model.TypeIncome, "salary")
	require.NoError(t, err)

	snap := store.Snapshot()
	assert.Equal(t, "1250.00", snap.Balance.StringFixed(2))
	assert.Equal(t, "250.00", snap.ExpenseTotal.StringFixed(2))
	assert.Equal(t, "500.00", snap.IncomeTotal.StringFixed(2))
	assert.True(t, snap.SpendingPercent.Equal(dec("25")))
}

// failingStore errors on every write but reads fine.
type failingStore struct {
	*storage.MemoryStore
}

func (f *failingStore) Put(key string, value []byte) error {
	return errors.New("disk full")
}

func TestPersistFailure_Swallowed(t *testing.T) {
	failing := &failingStore{MemoryStore: storage.NewMemoryStore()}
	store := NewStore(failing, zerolog.Nop(), "")
	store.Load()

	// The mutation succeeds in memory even though the write failed.
	require.NoError(t, store.CompleteOnboarding("750"))
	_, err := store.AddTransaction("10", "solo in memoria", model.TypeExpense, "food")
	require.NoError(t, err)

	state := store.State()
	assert.True(t, state.HasOnboarded)
	assert.True(t, state.BaseBudget.Equal(dec("750")))
	assert.Len(t, state.Transactions, 1)
}
