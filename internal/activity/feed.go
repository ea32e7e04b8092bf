package activity

import "time"

// Feed is an in-memory, append-only activity list.
type Feed struct {
	entries []Entry
	now     func() time.Time
}

// NewFeed creates an empty feed stamped with the wall clock.
func NewFeed() *Feed {
	return &Feed{now: time.Now}
}

// NewFeedWithClock creates a feed that stamps entries using now.
func NewFeedWithClock(now func() time.Time) *Feed {
	return &Feed{now: now}
}

// Add stamps and appends an entry, returning it.
func (f *Feed) Add(action Action, kind, recordID, details string) Entry {
	e := Entry{
		Timestamp: f.now().UTC(),
		Action:    action,
		Kind:      kind,
		RecordID:  recordID,
		Details:   details,
	}
	f.entries = append(f.entries, e)
	return e
}

// All returns every entry, oldest first.
func (f *Feed) All() []Entry {
	return append([]Entry(nil), f.entries...)
}

// Recent returns at most n entries, newest first.
func (f *Feed) Recent(n int) []Entry {
	return Newest(f.entries, n)
}

// Since returns the entries added after the first i, oldest first.
func (f *Feed) Since(i int) []Entry {
	if i >= len(f.entries) {
		return nil
	}
	return append([]Entry(nil), f.entries[max(i, 0):]...)
}

// Newest returns at most n of entries, newest first. entries must be in
// the order they were added.
func Newest(entries []Entry, n int) []Entry {
	n = min(n, len(entries))
	if n <= 0 {
		return nil
	}
	out := make([]Entry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		out = append(out, entries[i])
	}
	return out
}

// Len returns the number of entries.
func (f *Feed) Len() int {
	return len(f.entries)
}
