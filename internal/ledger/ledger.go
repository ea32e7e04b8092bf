// Package ledger keeps the append-only income and expense entries and their totals.
package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stakeledger/stakeledger/internal/aggregate"
	"github.com/stakeledger/stakeledger/internal/model"
)

// ErrDuplicateID is returned when a recorded entry reuses an existing ID.
var ErrDuplicateID = errors.New("duplicate transaction id")

// Totals are the running sums over both sides of the ledger.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Ledger holds income and expense entries in two append-only sequences.
type Ledger struct {
	income  []model.Transaction
	expense []model.Transaction
	ids     map[string]struct{}
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{ids: make(map[string]struct{})}
}

// Record validates tx, appends it to the sequence matching its type and
// returns the updated totals. Nothing is appended on error.
func (l *Ledger) Record(tx model.Transaction) (Totals, error) {
	if err := tx.Validate(); err != nil {
		return Totals{}, fmt.Errorf("recording transaction: %w", err)
	}
	if tx.ID != "" {
		if _, ok := l.ids[tx.ID]; ok {
			return Totals{}, fmt.Errorf("recording transaction %s: %w", tx.ID, ErrDuplicateID)
		}
		l.ids[tx.ID] = struct{}{}
	}

	switch tx.Type {
	case model.TypeIncome:
		l.income = append(l.income, tx)
	case model.TypeExpense:
		l.expense = append(l.expense, tx)
	}
	return l.Totals(), nil
}

// Totals returns the current income, expense and balance.
func (l *Ledger) Totals() Totals {
	in := sum(l.income)
	out := sum(l.expense)
	return Totals{Income: in, Expense: out, Balance: in.Sub(out)}
}

func sum(txs []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

// Income returns a copy of the income entries in recording order.
func (l *Ledger) Income() []model.Transaction {
	return append([]model.Transaction(nil), l.income...)
}

// Expenses returns a copy of the expense entries in recording order.
func (l *Ledger) Expenses() []model.Transaction {
	return append([]model.Transaction(nil), l.expense...)
}

// Entries returns a copy of one side of the ledger.
func (l *Ledger) Entries(typ model.TransactionType) []model.Transaction {
	if typ == model.TypeExpense {
		return l.Expenses()
	}
	return l.Income()
}

// Len returns the number of entries on both sides.
func (l *Ledger) Len() int {
	return len(l.income) + len(l.expense)
}

// Preview returns at most the first n entries of one side.
func (l *Ledger) Preview(typ model.TransactionType, n int) []model.Transaction {
	entries := l.Entries(typ)
	if n < 0 {
		n = 0
	}
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// ByCategory sums one side of the ledger per category.
func (l *Ledger) ByCategory(typ model.TransactionType) aggregate.Groups {
	return aggregate.GroupSum(l.Entries(typ), Category, Amount)
}

// ByProject sums one side of the ledger per project name.
func (l *Ledger) ByProject(typ model.TransactionType) aggregate.Groups {
	return aggregate.GroupSum(l.Entries(typ), Project, Amount)
}

// Find looks up an entry by ID on either side.
func (l *Ledger) Find(id string) (model.Transaction, bool) {
	if _, ok := l.ids[id]; !ok {
		return model.Transaction{}, false
	}
	for _, txs := range [][]model.Transaction{l.income, l.expense} {
		for _, tx := range txs {
			if tx.ID == id {
				return tx, true
			}
		}
	}
	return model.Transaction{}, false
}

// Extractors shared with the aggregate pipeline.

func Category(tx model.Transaction) string { return tx.Category }

func Project(tx model.Transaction) string { return tx.Project }

func Amount(tx model.Transaction) decimal.Decimal { return tx.Amount }

// SearchFields are the fields matched by a transaction search.
func SearchFields(tx model.Transaction) []string {
	return []string{tx.Category, tx.Project, tx.Description}
}
