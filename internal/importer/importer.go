// Package importer turns bank statement CSV exports into ledger entries.
package importer

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stakeledger/stakeledger/internal/model"
)

// ErrUnknownFormat is returned for a format no parser is registered for.
var ErrUnknownFormat = errors.New("unknown statement format")

// Row is one statement line. Amount is signed: credits are positive.
type Row struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// Parser reads one bank's statement layout.
type Parser interface {
	Parse(r io.Reader) ([]Row, error)
	Format() string
}

// Registry holds parsers by format name.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format.
func (r *Registry) Get(format string) (Parser, error) {
	p, ok := r.parsers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownFormat, format, strings.Join(r.Formats(), ", "))
	}
	return p, nil
}

// Formats lists registered format names in sorted order.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	r.Register(&SimpleParser{})
	return r
}

// Mapping decides how statement rows become transactions.
type Mapping struct {
	Project         string
	IncomeCategory  string
	ExpenseCategory string
}

// Transactions converts rows into ledger entries: credits become income and
// debits become expenses with the absolute amount. Zero rows are skipped and
// counted.
func (m Mapping) Transactions(rows []Row) (txs []model.Transaction, skipped int) {
	for _, row := range rows {
		tx := model.Transaction{
			Date:        row.Date,
			Project:     m.Project,
			Description: row.Description,
		}
		switch row.Amount.Sign() {
		case 1:
			tx.Type = model.TypeIncome
			tx.Category = m.IncomeCategory
		case -1:
			tx.Type = model.TypeExpense
			tx.Category = m.ExpenseCategory
		default:
			skipped++
			continue
		}
		tx.Amount = row.Amount.Abs()
		txs = append(txs, tx)
	}
	return txs, skipped
}
