package operations

import (
	"github.com/leengari/datatable/internal/domain/data"
	"github.com/leengari/datatable/internal/domain/errors"
	"github.com/leengari/datatable/internal/domain/schema"
)

// Max returns the maximum value of a numeric column across all rows.
// Missing cells are skipped. A non-numeric cell is a TypeError; a column
// with no present values at all wraps ErrEmptyTable.
func Max(t *schema.Table, label string) (data.Value, error) {
	if !t.HasLabel(label) {
		return nil, errors.NewColumnNotFound(label, t.Labels)
	}
	return MaxOf(t.Rows, label)
}

// MaxOf computes the column maximum over an explicit row subset.
// The caller is responsible for label validation.
func MaxOf(rows []data.Row, label string) (data.Value, error) {
	var (
		best      data.Value
		bestScore float64
		found     bool
	)

	for _, row := range rows {
		v, exists := row[label]
		if !exists || v == nil {
			continue
		}

		score, ok := data.Numeric(v)
		if !ok {
			return nil, errors.NewTypeError(label, v, "max requires a numeric column")
		}

		if !found || score > bestScore {
			best = v
			bestScore = score
			found = true
		}
	}

	if !found {
		return nil, errors.ErrEmptyTable
	}
	return best, nil
}
