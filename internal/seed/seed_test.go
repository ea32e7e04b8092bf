package seed

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeledger/stakeledger/internal/model"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Len(t, d.Stakeholders, 7)
	assert.Len(t, d.Projects, 3)
	assert.Len(t, d.Reports, 7)
	assert.Empty(t, d.Transactions)

	for _, s := range d.Stakeholders {
		assert.NoError(t, s.Validate(), s.ID)
	}
	for _, p := range d.Projects {
		assert.NoError(t, p.Validate(), p.ID)
	}
	for _, r := range d.Reports {
		assert.NoError(t, r.Validate(), r.ID)
	}
}

func TestStakeholderCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := Defaults().Stakeholders
	require.NoError(t, WriteStakeholders(&buf, in))
	assert.True(t, strings.HasPrefix(buf.String(), StakeholderHeader+"\n"))

	got, err := ReadStakeholders(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, got[i].ID)
		assert.Equal(t, in[i].Email, got[i].Email)
		assert.True(t, in[i].Share.Equal(got[i].Share))
	}
}

func TestProjectCSV(t *testing.T) {
	row := MarshalProject(model.Project{ID: "PRJ-0001", Name: "Website Redesign", Value: decimal.NewFromInt(15000), Completion: 75})
	assert.Equal(t, []string{"PRJ-0001", "Website Redesign", "", "15000.00", "75"}, row)

	p, err := UnmarshalProject(row)
	require.NoError(t, err)
	assert.Equal(t, 75, p.Completion)
	assert.True(t, p.Value.Equal(decimal.NewFromInt(15000)))

	_, err = UnmarshalProject([]string{"PRJ-0002", "x", "", "abc", "1"})
	assert.Error(t, err)
	_, err = UnmarshalProject([]string{"PRJ-0002", "x", "", "1", "most"})
	assert.Error(t, err)
}

func TestReportCSV(t *testing.T) {
	r, err := UnmarshalReport([]string{"R001", "Sales Q1 Report", "Sales", "Success", "2025-04-01"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, r.Status)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), r.Date)
	assert.Equal(t, "2025-04-01", MarshalReport(r)[4])

	_, err = UnmarshalReport([]string{"R001", "t", "c", "Success", "04/01/2025"})
	assert.Error(t, err)
}

func TestTransactionCSV(t *testing.T) {
	rec := []string{"TXN-1", "expense", "2025-04-03", "30", "Food", "Personal", "lunch"}
	tx, err := UnmarshalTransaction(rec)
	require.NoError(t, err)
	assert.Equal(t, model.TypeExpense, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "30.00", MarshalTransaction(tx)[3])

	bad := append([]string(nil), rec...)
	bad[3] = "thirty"
	_, err = UnmarshalTransaction(bad)
	assert.ErrorIs(t, err, model.ErrNotNumeric)

	bad = append([]string(nil), rec...)
	bad[1] = "transfer"
	_, err = UnmarshalTransaction(bad)
	assert.ErrorIs(t, err, model.ErrInvalidType)
}

func TestRead_WrongFieldCount(t *testing.T) {
	_, err := ReadReports(strings.NewReader(ReportHeader + "\nR001,only,three\n"))
	assert.Error(t, err)
}

func TestRead_Empty(t *testing.T) {
	got, err := ReadProjects(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "seed")
	data := Defaults()
	data.Transactions = []model.Transaction{{
		ID:       "TXN-1",
		Type:     model.TypeIncome,
		Date:     time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(100),
		Category: "Salary",
		Project:  "Project A",
	}}
	require.NoError(t, Save(dir, data))

	for _, name := range []string{StakeholdersFile, ProjectsFile, ReportsFile, TransactionsFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, got.Stakeholders, 7)
	assert.Len(t, got.Projects, 3)
	assert.Len(t, got.Reports, 7)
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, "Salary", got.Transactions[0].Category)
}

func TestLoad_PartialDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ReportsFile),
		[]byte(ReportHeader+"\nR009,Ops Review,IT,Warning,2025-05-01\n"), 0o644))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, got.Stakeholders)
	require.Len(t, got.Reports, 1)
	assert.Equal(t, "R009", got.Reports[0].ID)
}

func TestLoad_MissingDir(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, got.Projects)
}

func TestLoad_BadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectsFile),
		[]byte(ProjectHeader+"\nPRJ-1,x,y,notmoney,5\n"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ProjectsFile)
	assert.Contains(t, err.Error(), "row 2")
}
