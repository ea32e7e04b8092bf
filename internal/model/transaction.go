package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

// TransactionType says which side of the ledger an entry belongs to.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType accepts "income" or "expense" in any case.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeIncome, TypeExpense:
		return t, nil
	default:
		return "", fmt.Errorf("transaction type %q: %w", s, ErrInvalidType)
	}
}

// Transaction is a single income or expense entry.
type Transaction struct {
	ID          string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
	Project     string // free text, not checked against projects
	Description string
	Type        TransactionType
}

// Validate checks the amount, category, type and date.
func (t Transaction) Validate() error {
	var result *multierror.Error
	if !t.Amount.IsPositive() {
		result = multierror.Append(result, &FieldError{Field: "amount", Err: ErrOutOfRange})
	}
	if strings.TrimSpace(t.Category) == "" {
		result = multierror.Append(result, &FieldError{Field: "category", Err: ErrRequired})
	}
	if t.Type != TypeIncome && t.Type != TypeExpense {
		result = multierror.Append(result, &FieldError{Field: "type", Err: ErrInvalidType})
	}
	if t.Date.IsZero() {
		result = multierror.Append(result, &FieldError{Field: "date", Err: ErrRequired})
	}
	return result.ErrorOrNil()
}

// ParseAmount converts user input into a decimal amount.
// Non-numeric input is rejected with ErrNotNumeric.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, &FieldError{Field: "amount", Err: ErrRequired}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &FieldError{Field: "amount", Err: fmt.Errorf("%q: %w", s, ErrNotNumeric)}
	}
	return d, nil
}
