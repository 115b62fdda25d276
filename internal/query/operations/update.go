package operations

import (
	"github.com/leengari/datatable/internal/domain/data"
	"github.com/leengari/datatable/internal/domain/errors"
	"github.com/leengari/datatable/internal/domain/schema"
)

// Update sets the given columns on every row matching the predicate and
// returns the number of rows updated. The predicate is evaluated against
// the pre-update row, so an update that rewrites a selector column does
// not re-match. Updates are applied independently per row; there is no
// rollback of rows already updated when a later row fails.
func Update(t *schema.Table, pred PredicateFunc, set data.Row) (int, error) {
	for label := range set {
		if !t.HasLabel(label) {
			return 0, errors.NewColumnNotFound(label, t.Labels)
		}
	}

	updated := 0
	for i := range t.Rows {
		if !pred(t.Rows[i]) {
			continue
		}

		newRow := t.Rows[i].Copy()
		for label, v := range set {
			newRow[label] = v
		}
		t.Rows[i] = newRow
		updated++
	}

	if updated > 0 {
		t.MarkDirty()
	}
	return updated, nil
}
