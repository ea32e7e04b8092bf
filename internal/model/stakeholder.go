package model

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

// Level buckets a percentage into the three bands the dashboard colors by.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

var hundred = decimal.NewFromInt(100)

// Stakeholder is a person holding a share of the venture.
type Stakeholder struct {
	ID               string
	Name             string
	Email            string
	Role             string
	Share            decimal.Decimal // percentage, 0-100
	Responsibilities string
}

// ShareLevel classifies the share: below 10 is low, below 20 medium.
func (s Stakeholder) ShareLevel() Level {
	switch {
	case s.Share.LessThan(decimal.NewFromInt(10)):
		return LevelLow
	case s.Share.LessThan(decimal.NewFromInt(20)):
		return LevelMedium
	default:
		return LevelHigh
	}
}

// Validate checks required fields and the share range.
func (s Stakeholder) Validate() error {
	var result *multierror.Error
	if strings.TrimSpace(s.Name) == "" {
		result = multierror.Append(result, &FieldError{Field: "name", Err: ErrRequired})
	}
	if s.Share.IsNegative() || s.Share.GreaterThan(hundred) {
		result = multierror.Append(result, &FieldError{Field: "share", Err: ErrOutOfRange})
	}
	return result.ErrorOrNil()
}
