package operations

import (
	"github.com/leengari/datatable/internal/domain/data"
	"github.com/leengari/datatable/internal/domain/schema"
)

// Delete removes rows matching the predicate.
// Returns number of rows deleted (zero is not an error).
func Delete(t *schema.Table, pred PredicateFunc) int {
	deleted := 0
	newRows := make([]data.Row, 0, len(t.Rows))

	for _, row := range t.Rows {
		if pred(row) {
			deleted++
			continue
		}
		newRows = append(newRows, row)
	}

	if deleted == 0 {
		return 0
	}

	t.Rows = newRows
	t.MarkDirty()
	return deleted
}
