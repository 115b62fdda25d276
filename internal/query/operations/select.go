package operations

import (
	"github.com/leengari/datatable/internal/domain/data"
	"github.com/leengari/datatable/internal/domain/schema"
)

// PredicateFunc is a function that tests whether a row matches certain criteria
type PredicateFunc func(data.Row) bool

// SelectAll returns a copy of every row in insertion order.
// Rows are copied so callers cannot mutate table state through the result.
func SelectAll(t *schema.Table) []data.Row {
	rows := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = row.Copy()
	}
	return rows
}

// SelectWhere returns copies of the rows that match the given predicate,
// preserving insertion order. No match yields an empty (nil) result, not
// an error.
func SelectWhere(t *schema.Table, pred PredicateFunc) []data.Row {
	var result []data.Row
	for _, row := range t.Rows {
		if pred(row) {
			result = append(result, row.Copy())
		}
	}
	return result
}
