package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestShareLevel(t *testing.T) {
	tests := []struct {
		share string
		want  Level
	}{
		{"0", LevelLow},
		{"9.99", LevelLow},
		{"10", LevelMedium},
		{"19", LevelMedium},
		{"20", LevelHigh},
		{"100", LevelHigh},
	}
	for _, tt := range tests {
		s := Stakeholder{Share: dec(tt.share)}
		assert.Equal(t, tt.want, s.ShareLevel(), "share %s", tt.share)
	}
}

func TestCompletionLevel(t *testing.T) {
	assert.Equal(t, LevelLow, Project{Completion: 29}.CompletionLevel())
	assert.Equal(t, LevelMedium, Project{Completion: 30}.CompletionLevel())
	assert.Equal(t, LevelMedium, Project{Completion: 69}.CompletionLevel())
	assert.Equal(t, LevelHigh, Project{Completion: 70}.CompletionLevel())
}

func TestStakeholderValidate(t *testing.T) {
	good := Stakeholder{Name: "Ali Khan", Share: dec("25")}
	require.NoError(t, good.Validate())

	err := Stakeholder{Name: "  ", Share: dec("101")}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequired)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "share")
}

func TestProjectValidate(t *testing.T) {
	require.NoError(t, Project{Name: "CRM", Value: dec("25000"), Completion: 90}.Validate())

	err := Project{Name: "CRM", Value: dec("-1"), Completion: 120}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)

	err = Project{}.Validate()
	assert.ErrorIs(t, err, ErrRequired)
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Amount:   dec("100"),
		Date:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Category: "Salary",
		Type:     TypeIncome,
	}
	require.NoError(t, good.Validate())

	bads := []Transaction{
		{Amount: dec("0"), Date: good.Date, Category: "Salary", Type: TypeIncome},
		{Amount: dec("-5"), Date: good.Date, Category: "Salary", Type: TypeIncome},
		{Amount: dec("5"), Date: good.Date, Category: "", Type: TypeIncome},
		{Amount: dec("5"), Date: good.Date, Category: "Salary", Type: "transfer"},
		{Amount: dec("5"), Category: "Salary", Type: TypeExpense},
	}
	for i, tx := range bads {
		assert.Error(t, tx.Validate(), "case %d", i)
	}
}

func TestReportValidate(t *testing.T) {
	require.NoError(t, Report{Title: "Sales Q1 Report", Status: StatusSuccess}.Validate())
	err := Report{Title: "Bug Report", Status: "Pending"}.Validate()
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount(" 12.50 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec("12.5")))

	_, err = ParseAmount("abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotNumeric)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "amount", fe.Field)

	_, err = ParseAmount("")
	assert.ErrorIs(t, err, ErrRequired)
}

func TestParseTransactionType(t *testing.T) {
	typ, err := ParseTransactionType("Income")
	require.NoError(t, err)
	assert.Equal(t, TypeIncome, typ)

	typ, err = ParseTransactionType("expense")
	require.NoError(t, err)
	assert.Equal(t, TypeExpense, typ)

	_, err = ParseTransactionType("refund")
	assert.ErrorIs(t, err, ErrInvalidType)
}
