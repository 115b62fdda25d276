package operations

import (
	"sort"

	"github.com/leengari/datatable/internal/domain/data"
	"github.com/leengari/datatable/internal/domain/errors"
	"github.com/leengari/datatable/internal/domain/schema"
)

// Insert appends one row at the end of the table.
// Declared labels absent from the input are filled with the missing marker;
// an undeclared label in the input is a ColumnNotFoundError.
// On an empty, label-less table the row's labels (sorted) become the
// declared labels.
func Insert(t *schema.Table, mutRow data.Row) error {
	row, err := normalizeRow(t, mutRow)
	if err != nil {
		return err
	}

	t.Rows = append(t.Rows, row)
	t.MarkDirty()
	return nil
}

// InsertAll appends several rows in order. All rows are validated before
// any is appended, so a failing batch appends nothing.
func InsertAll(t *schema.Table, mutRows []data.Row) error {
	rows := make([]data.Row, 0, len(mutRows))
	for _, mutRow := range mutRows {
		row, err := normalizeRow(t, mutRow)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil
	}

	t.Rows = append(t.Rows, rows...)
	t.MarkDirty()
	return nil
}

// normalizeRow copies the caller's row, checks its labels, and fills
// absent declared labels with nil. May adopt labels on a fresh table.
func normalizeRow(t *schema.Table, mutRow data.Row) (data.Row, error) {
	if len(t.Labels) == 0 && len(t.Rows) == 0 {
		labels := make([]string, 0, len(mutRow))
		for label := range mutRow {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		t.AdoptLabels(labels)
	}

	for label := range mutRow {
		if !t.HasLabel(label) {
			return nil, errors.NewColumnNotFound(label, t.Labels)
		}
	}

	row := make(data.Row, len(t.Labels))
	for _, label := range t.Labels {
		if v, exists := mutRow[label]; exists {
			row[label] = v
		} else {
			row[label] = nil
		}
	}
	return row, nil
}
