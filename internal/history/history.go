// Package history records conversion snapshots for the current process and
// exports them as CSV rows. Nothing is persisted.
package history

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"

	"unitconv/internal/domain"
)

// Header is the CSV header written by WriteCSV.
var Header = []string{"from_unit", "to_unit", "input_value", "converted_value"}

// Log is an append-only, insertion-ordered list of history entries.
type Log struct {
	entries []domain.HistoryEntry
}

// Append records e.
func (l *Log) Append(e domain.HistoryEntry) {
	l.entries = append(l.entries, e)
}

// Len returns the number of recorded entries.
func (l *Log) Len() int { return len(l.entries) }

// Entries returns a copy of the recorded entries, oldest first.
func (l *Log) Entries() []domain.HistoryEntry {
	return slices.Clone(l.entries)
}

// Row shapes one state as an export row.
func Row(s domain.State) []string {
	return []string{
		s.FromUnit,
		s.ToUnit,
		strconv.FormatFloat(s.InputValue, 'g', -1, 64),
		strconv.FormatFloat(s.ConvertedValue, 'g', -1, 64),
	}
}

// WriteCSV writes the header followed by one row per entry.
func (l *Log) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range l.entries {
		if err := cw.Write(Row(e.State)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
