package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stakeledger/stakeledger/internal/model"
)

// CSV headers, one per file.
const (
	StakeholderHeader = "id,name,email,role,share,responsibilities"
	ProjectHeader     = "id,name,description,value,completion"
	ReportHeader      = "id,title,category,status,date"
	TransactionHeader = "id,type,date,amount,category,project,description"
)

const dateFormat = "2006-01-02"

func readRows[T any](r io.Reader, header string, unmarshal func([]string) (T, error)) ([]T, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = strings.Count(header, ",") + 1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var out []T
	for i, rec := range records[1:] {
		v, err := unmarshal(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func writeRows[T any](w io.Writer, header string, rows []T, marshal func(T) []string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, v := range rows {
		if err := cw.Write(marshal(v)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return d, nil
}

// Stakeholders

func ReadStakeholders(r io.Reader) ([]model.Stakeholder, error) {
	return readRows(r, StakeholderHeader, UnmarshalStakeholder)
}

func WriteStakeholders(w io.Writer, rows []model.Stakeholder) error {
	return writeRows(w, StakeholderHeader, rows, MarshalStakeholder)
}

func MarshalStakeholder(s model.Stakeholder) []string {
	return []string{s.ID, s.Name, s.Email, s.Role, s.Share.String(), s.Responsibilities}
}

func UnmarshalStakeholder(rec []string) (model.Stakeholder, error) {
	share, err := parseDecimal("share", rec[4])
	if err != nil {
		return model.Stakeholder{}, err
	}
	return model.Stakeholder{
		ID:               rec[0],
		Name:             rec[1],
		Email:            rec[2],
		Role:             rec[3],
		Share:            share,
		Responsibilities: rec[5],
	}, nil
}

// Projects

func ReadProjects(r io.Reader) ([]model.Project, error) {
	return readRows(r, ProjectHeader, UnmarshalProject)
}

func WriteProjects(w io.Writer, rows []model.Project) error {
	return writeRows(w, ProjectHeader, rows, MarshalProject)
}

func MarshalProject(p model.Project) []string {
	return []string{p.ID, p.Name, p.Description, p.Value.StringFixed(2), strconv.Itoa(p.Completion)}
}

func UnmarshalProject(rec []string) (model.Project, error) {
	value, err := parseDecimal("value", rec[3])
	if err != nil {
		return model.Project{}, err
	}
	completion := 0
	if rec[4] != "" {
		completion, err = strconv.Atoi(rec[4])
		if err != nil {
			return model.Project{}, fmt.Errorf("parsing completion %q: %w", rec[4], err)
		}
	}
	return model.Project{
		ID:          rec[0],
		Name:        rec[1],
		Description: rec[2],
		Value:       value,
		Completion:  completion,
	}, nil
}

// Reports

func ReadReports(r io.Reader) ([]model.Report, error) {
	return readRows(r, ReportHeader, UnmarshalReport)
}

func WriteReports(w io.Writer, rows []model.Report) error {
	return writeRows(w, ReportHeader, rows, MarshalReport)
}

func MarshalReport(r model.Report) []string {
	return []string{r.ID, r.Title, r.Category, string(r.Status), r.Date.Format(dateFormat)}
}

func UnmarshalReport(rec []string) (model.Report, error) {
	date, err := time.Parse(dateFormat, rec[4])
	if err != nil {
		return model.Report{}, fmt.Errorf("parsing date %q: %w", rec[4], err)
	}
	return model.Report{
		ID:       rec[0],
		Title:    rec[1],
		Category: rec[2],
		Status:   model.ReportStatus(rec[3]),
		Date:     date,
	}, nil
}

// Transactions

func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	return readRows(r, TransactionHeader, UnmarshalTransaction)
}

func WriteTransactions(w io.Writer, rows []model.Transaction) error {
	return writeRows(w, TransactionHeader, rows, MarshalTransaction)
}

func MarshalTransaction(t model.Transaction) []string {
	return []string{
		t.ID,
		string(t.Type),
		t.Date.Format(dateFormat),
		t.Amount.StringFixed(2),
		t.Category,
		t.Project,
		t.Description,
	}
}

func UnmarshalTransaction(rec []string) (model.Transaction, error) {
	typ, err := model.ParseTransactionType(rec[1])
	if err != nil {
		return model.Transaction{}, err
	}
	date, err := time.Parse(dateFormat, rec[2])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[2], err)
	}
	amount, err := model.ParseAmount(rec[3])
	if err != nil {
		return model.Transaction{}, err
	}
	return model.Transaction{
		ID:          rec[0],
		Type:        typ,
		Date:        date,
		Amount:      amount,
		Category:    rec[4],
		Project:     rec[5],
		Description: rec[6],
	}, nil
}
