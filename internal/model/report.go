package model

import (
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

// ReportStatus is the outcome recorded on a report.
type ReportStatus string

const (
	StatusSuccess ReportStatus = "Success"
	StatusWarning ReportStatus = "Warning"
	StatusError   ReportStatus = "Error"
)

// Valid reports whether the status is one of the known values.
func (s ReportStatus) Valid() bool {
	switch s {
	case StatusSuccess, StatusWarning, StatusError:
		return true
	}
	return false
}

// Report is a static, read-only entry in the reports list.
type Report struct {
	ID       string
	Title    string
	Category string
	Status   ReportStatus
	Date     time.Time
}

func (r Report) Validate() error {
	var result *multierror.Error
	if strings.TrimSpace(r.Title) == "" {
		result = multierror.Append(result, &FieldError{Field: "title", Err: ErrRequired})
	}
	if !r.Status.Valid() {
		result = multierror.Append(result, &FieldError{Field: "status", Err: ErrInvalidType})
	}
	return result.ErrorOrNil()
}
