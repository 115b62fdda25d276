package selector

import (
	"sort"

	"github.com/leengari/datatable/internal/domain/data"
	"github.com/leengari/datatable/internal/domain/errors"
	"github.com/leengari/datatable/internal/domain/schema"
)

// Selector maps column labels to required cell values. A row matches when
// every pair matches (logical AND). A nil or empty selector matches all rows.
type Selector map[string]data.Value

// Validate checks every selector label against the table's declared labels.
// Labels are checked in sorted order so the reported error is deterministic.
func Validate(t *schema.Table, sel Selector) error {
	if len(sel) == 0 {
		return nil
	}

	labels := make([]string, 0, len(sel))
	for label := range sel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if !t.HasLabel(label) {
			return errors.NewColumnNotFound(label, t.Labels)
		}
	}
	return nil
}

// Matches reports whether the row satisfies every selector pair.
// Short-circuits on the first mismatch.
func Matches(row data.Row, sel Selector) bool {
	for label, want := range sel {
		got, exists := row[label]
		if !exists {
			return false
		}
		if !data.Equal(got, want) {
			return false
		}
	}
	return true
}
