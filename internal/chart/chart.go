// Package chart turns grouped sums into chart-ready series.
package chart

import (
	"github.com/shopspring/decimal"

	"github.com/stakeledger/stakeledger/internal/aggregate"
)

// Palettes used by the finance dashboard.
var (
	IncomePalette  = []string{"#4CAF50", "#8BC34A", "#CDDC39", "#FFEB3B", "#FFC107"}
	ExpensePalette = []string{"#F44336", "#E91E63", "#9C27B0", "#673AB7", "#3F51B5", "#2196F3"}
)

const (
	IncomeColor  = "#4CAF50"
	ExpenseColor = "#F44336"
)

// Slice is one labelled value of a pie chart.
type Slice struct {
	Label string
	Value decimal.Decimal
	Color string
}

// Series is a pie chart dataset.
type Series []Slice

// Pie converts groups into slices, cycling through palette for colors.
func Pie(groups aggregate.Groups, palette []string) Series {
	items := groups.Items()
	s := make(Series, len(items))
	for i, g := range items {
		s[i] = Slice{Label: g.Key, Value: g.Sum}
		if len(palette) > 0 {
			s[i].Color = palette[i%len(palette)]
		}
	}
	return s
}

// Total sums every slice.
func (s Series) Total() decimal.Decimal {
	total := decimal.Zero
	for _, sl := range s {
		total = total.Add(sl.Value)
	}
	return total
}

// Shares returns each slice as a percentage of the total, rounded to one
// decimal place. An all-zero series yields zeros.
func (s Series) Shares() []decimal.Decimal {
	total := s.Total()
	out := make([]decimal.Decimal, len(s))
	for i, sl := range s {
		if total.IsZero() {
			out[i] = decimal.Zero
			continue
		}
		out[i] = sl.Value.Mul(decimal.NewFromInt(100)).Div(total).Round(1)
	}
	return out
}

// Bar is one label of a two-dataset bar chart.
type Bar struct {
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Comparison is an income-vs-expense bar chart.
type Comparison []Bar

// Compare lays income and expense sums over a fixed label list. Labels that
// never occurred are zero; keys outside labels are ignored.
func Compare(labels []string, income, expense aggregate.Groups) Comparison {
	c := make(Comparison, len(labels))
	for i, l := range labels {
		c[i] = Bar{Label: l, Income: income.Get(l), Expense: expense.Get(l)}
	}
	return c
}

// Max returns the largest single value in the comparison, for scaling.
func (c Comparison) Max() decimal.Decimal {
	m := decimal.Zero
	for _, b := range c {
		m = decimal.Max(m, b.Income, b.Expense)
	}
	return m
}
