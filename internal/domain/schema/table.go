package schema

import (
	"sort"

	"github.com/leengari/datatable/internal/domain/data"
	"github.com/leengari/datatable/internal/domain/errors"
)

// Table holds one in-memory table: the ordered column labels shared by all
// rows, and the rows themselves in insertion order.
//
// The table is an exclusively-owned, unshared resource. There is no
// internal locking; the owner serializes access.
type Table struct {
	Labels []string
	Rows   []data.Row
	Path   string // source CSV path, empty for in-memory tables
	Sep    rune   // field separator used on load/save
	Dirty  bool   // tracks if table has unsaved changes
}

// NewTable creates an empty table with the given labels
func NewTable(labels []string) *Table {
	return &Table{
		Labels: append([]string(nil), labels...),
		Rows:   make([]data.Row, 0),
		Sep:    ',',
	}
}

// FromColumns builds a table from a column map. Every column must carry
// the same number of values. When order is nil the labels are sorted to
// keep construction deterministic.
func FromColumns(cols map[string][]data.Value, order []string) (*Table, error) {
	if order == nil {
		order = make([]string, 0, len(cols))
		for label := range cols {
			order = append(order, label)
		}
		sort.Strings(order)
	} else {
		for _, label := range order {
			if _, ok := cols[label]; !ok {
				return nil, errors.NewColumnNotFound(label, sortedLabels(cols))
			}
		}
		ordered := make(map[string]bool, len(order))
		for _, label := range order {
			ordered[label] = true
		}
		for _, label := range sortedLabels(cols) {
			if !ordered[label] {
				return nil, errors.NewColumnNotFound(label, order)
			}
		}
	}

	t := NewTable(order)
	if len(order) == 0 {
		return t, nil
	}

	want := len(cols[order[0]])
	for _, label := range order {
		if got := len(cols[label]); got != want {
			return nil, errors.NewShapeError(label, want, got)
		}
	}

	for i := 0; i < want; i++ {
		row := make(data.Row, len(order))
		for _, label := range order {
			row[label] = cols[label][i]
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// HasLabel reports whether the label is declared on this table
func (t *Table) HasLabel(label string) bool {
	for _, l := range t.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// MarkDirty marks the table as having unsaved changes
// This should be called after any mutation operation (insert, update, delete)
func (t *Table) MarkDirty() {
	t.Dirty = true
}

// AdoptLabels declares labels on a table that has none yet. Used when the
// first row is inserted into an empty, label-less table.
func (t *Table) AdoptLabels(labels []string) {
	t.Labels = append([]string(nil), labels...)
}

func sortedLabels(cols map[string][]data.Value) []string {
	labels := make([]string, 0, len(cols))
	for label := range cols {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
