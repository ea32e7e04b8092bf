package model

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

// Project is a tracked piece of work with a contract value.
type Project struct {
	ID          string
	Name        string
	Description string
	Value       decimal.Decimal
	Completion  int // percent, 0-100
}

// CompletionLevel classifies progress: below 30 is low, below 70 medium.
func (p Project) CompletionLevel() Level {
	switch {
	case p.Completion < 30:
		return LevelLow
	case p.Completion < 70:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// Validate checks required fields and numeric ranges.
func (p Project) Validate() error {
	var result *multierror.Error
	if strings.TrimSpace(p.Name) == "" {
		result = multierror.Append(result, &FieldError{Field: "name", Err: ErrRequired})
	}
	if p.Value.IsNegative() {
		result = multierror.Append(result, &FieldError{Field: "value", Err: ErrOutOfRange})
	}
	if p.Completion < 0 || p.Completion > 100 {
		result = multierror.Append(result, &FieldError{Field: "completion", Err: ErrOutOfRange})
	}
	return result.ErrorOrNil()
}
