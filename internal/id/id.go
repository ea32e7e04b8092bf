package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Prefixes for the record kinds that carry sequential IDs.
const (
	StakeholderPrefix = "STK-"
	ProjectPrefix     = "PRJ-"
	ReportPrefix      = "R"
	TransactionPrefix = "TXN-"
)

// Format returns an ID like "STK-1008" or "R007".
func Format(prefix string, seq, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, seq)
}

// Parse splits "STK-1008" into its numeric sequence.
func Parse(prefix, s string) (int, error) {
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("invalid ID %q: missing prefix %q", s, prefix)
	}
	seq, err := strconv.Atoi(s[len(prefix):])
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in ID %q: %w", s, err)
	}
	if seq < 0 {
		return 0, fmt.Errorf("invalid sequence in ID %q: negative", s)
	}
	return seq, nil
}

// Next returns the next sequential ID after the highest one in existing.
// IDs that do not parse are ignored; start is used when nothing parses.
func Next(prefix string, width, start int, existing []string) string {
	maxSeq := start - 1
	for _, s := range existing {
		seq, err := Parse(prefix, s)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return Format(prefix, maxSeq+1, width)
}

// NewTransactionID returns a random transaction ID.
func NewTransactionID() string {
	return TransactionPrefix + uuid.NewString()
}
