package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ChaseParser parses Chase checking CSV exports.
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV, header included.
func (p *ChaseParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields
	return parseRows(cr, "chase", func(rec []string) (Row, error) {
		return parseRow(rec[chaseColDate], chaseDateFormat, rec[chaseColDesc], rec[chaseColAmount])
	})
}

// SimpleParser reads "date,description,amount" files with ISO dates, the
// smallest layout most banks can export.
type SimpleParser struct{}

const simpleDateFormat = "2006-01-02"

// Format returns the parser name.
func (p *SimpleParser) Format() string { return "simple" }

// Parse reads a simple CSV, header included.
func (p *SimpleParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	return parseRows(cr, "simple", func(rec []string) (Row, error) {
		return parseRow(rec[0], simpleDateFormat, rec[1], rec[2])
	})
}

func parseRows(cr *csv.Reader, format string, parse func([]string) (Row, error)) ([]Row, error) {
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", format, err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := parse(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(date, layout, desc, amount string) (Row, error) {
	d, err := time.Parse(layout, strings.TrimSpace(date))
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", date, err)
	}
	amt, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	return Row{Date: d, Description: strings.TrimSpace(desc), Amount: amt}, nil
}
