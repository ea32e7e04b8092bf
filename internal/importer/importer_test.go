package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeledger/stakeledger/internal/model"
)

func parseChase(t *testing.T) []Row {
	t.Helper()
	f, err := os.Open("testdata/chase_checking.csv")
	require.NoError(t, err)
	defer f.Close()

	rows, err := (&ChaseParser{}).Parse(f)
	require.NoError(t, err)
	return rows
}

func TestChaseParser_Parse(t *testing.T) {
	rows := parseChase(t)
	require.Len(t, rows, 5)

	assert.Equal(t, "CLOUD HOSTING MAY", rows[0].Description)
	assert.Equal(t, "-120.00", rows[0].Amount.StringFixed(2))
	assert.Equal(t, 2025, rows[0].Date.Year())
	assert.Equal(t, 5, int(rows[0].Date.Month()))
	assert.Equal(t, 2, rows[0].Date.Day())

	assert.Equal(t, "CLIENT INVOICE 2041", rows[1].Description)
	assert.True(t, rows[1].Amount.IsPositive())
}

func TestChaseParser_HeaderOnly(t *testing.T) {
	rows, err := (&ChaseParser{}).Parse(strings.NewReader("Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"))
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestChaseParser_BadDate(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,NOTADATE,desc,-4.00,ACH_DEBIT,100.00,\n"
	_, err := (&ChaseParser{}).Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2: parsing date")
}

func TestChaseParser_BadAmount(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,05/02/2025,desc,lots,ACH_DEBIT,100.00,\n"
	_, err := (&ChaseParser{}).Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestChaseParser_WrongFieldCount(t *testing.T) {
	_, err := (&ChaseParser{}).Parse(strings.NewReader("a,b,c\n1,2,3\n"))
	assert.Error(t, err)
}

func TestSimpleParser(t *testing.T) {
	csv := "date,description,amount\n2025-05-01, Consulting ,1200\n2025-05-03,Train tickets,-42.50\n"
	rows, err := (&SimpleParser{}).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Consulting", rows[0].Description)
	assert.Equal(t, "-42.50", rows[1].Amount.StringFixed(2))
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"chase", "simple"}, r.Formats())

	p, err := r.Get("CHASE")
	require.NoError(t, err)
	assert.Equal(t, "chase", p.Format())

	_, err = r.Get("barclays")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	assert.Panics(t, func() { r.Register(&ChaseParser{}) })
}

func TestMapping_Transactions(t *testing.T) {
	m := Mapping{Project: "Project A", IncomeCategory: "Freelance", ExpenseCategory: "Other"}
	txs, skipped := m.Transactions(parseChase(t))

	assert.Equal(t, 1, skipped)
	require.Len(t, txs, 4)

	assert.Equal(t, model.TypeExpense, txs[0].Type)
	assert.Equal(t, "Other", txs[0].Category)
	assert.Equal(t, "120.00", txs[0].Amount.StringFixed(2))
	assert.Equal(t, "Project A", txs[0].Project)

	assert.Equal(t, model.TypeIncome, txs[1].Type)
	assert.Equal(t, "Freelance", txs[1].Category)
	assert.Equal(t, "CLIENT INVOICE 2041", txs[1].Description)

	for _, tx := range txs {
		assert.NoError(t, tx.Validate())
	}
}
