package ledger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/miobudget/miobudget/internal/model"
)

// stateKey is the single well-known storage key holding the whole ledger.
const stateKey = "ledger"

// Persisted document layout. Amounts travel as fixed two-decimal strings so
// the stored form matches what the user was shown.
type stateDoc struct {
	HasOnboarded bool             `json:"hasOnboarded"`
	TotalBudget  json.RawMessage  `json:"totalBudget"` // decimal string; bare numbers accepted on read
	Transactions []transactionDoc `json:"transactions"`
}

type transactionDoc struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Amount      string      `json:"amount"`
	Type        string      `json:"type"`
	Category    categoryDoc `json:"category"`
	Date        string      `json:"date"`
}

type categoryDoc struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// MarshalState encodes a LedgerState as its persisted JSON document.
func MarshalState(state model.LedgerState) ([]byte, error) {
	doc := stateDoc{
		HasOnboarded: state.HasOnboarded,
		TotalBudget:  json.RawMessage(fmt.Sprintf("%q", state.BaseBudget.String())),
		Transactions: make([]transactionDoc, 0, len(state.Transactions)),
	}
	for _, tx := range state.Transactions {
		doc.Transactions = append(doc.Transactions, transactionDoc{
			ID:          tx.ID,
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Type:        string(tx.Type),
			Category: categoryDoc{
				ID:    tx.Category.ID,
				Name:  tx.Category.Name,
				Icon:  tx.Category.Icon,
				Color: tx.Category.Color,
			},
			Date: tx.Date,
		})
	}
	return json.Marshal(doc)
}

// UnmarshalState decodes a persisted document back into a LedgerState.
func UnmarshalState(data []byte) (model.LedgerState, error) {
	var doc stateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.LedgerState{}, fmt.Errorf("parsing ledger document: %w", err)
	}

	budget, err := parseBudgetField(doc.TotalBudget)
	if err != nil {
		return model.LedgerState{}, err
	}

	state := model.LedgerState{
		HasOnboarded: doc.HasOnboarded,
		BaseBudget:   budget,
	}
	for i, td := range doc.Transactions {
		amount, err := decimal.NewFromString(td.Amount)
		if err != nil {
			return model.LedgerState{}, fmt.Errorf("transaction %d: parsing amount %q: %w", i, td.Amount, err)
		}
		typ := model.TransactionType(td.Type)
		if !typ.Valid() {
			return model.LedgerState{}, fmt.Errorf("transaction %d: unknown type %q", i, td.Type)
		}
		state.Transactions = append(state.Transactions, model.Transaction{
			ID:          td.ID,
			Description: td.Description,
			Amount:      amount,
			Type:        typ,
			Category: model.Category{
				ID:    td.Category.ID,
				Name:  td.Category.Name,
				Icon:  td.Category.Icon,
				Color: td.Category.Color,
			},
			Date: td.Date,
		})
	}
	return state, nil
}

// parseBudgetField accepts both `"1000.50"` and `1000.50`; earlier app
// versions stored the budget as a bare number.
func parseBudgetField(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return decimal.Zero, nil
	}
	budget, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing totalBudget %q: %w", s, err)
	}
	return budget, nil
}
