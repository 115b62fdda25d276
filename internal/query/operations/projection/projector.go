package projection

import (
	"github.com/leengari/datatable/internal/domain/data"
)

// Project narrows each row to the given labels. Rows are fresh maps, so
// the source rows are never shared with the caller.
func Project(rows []data.Row, labels []string) []data.Row {
	if len(labels) == 0 {
		return rows
	}

	result := make([]data.Row, len(rows))
	for i, row := range rows {
		projected := make(data.Row, len(labels))
		for _, label := range labels {
			if v, exists := row[label]; exists {
				projected[label] = v
			}
		}
		result[i] = projected
	}
	return result
}
