package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/leengari/datatable/internal/domain/data"
	"github.com/leengari/datatable/internal/domain/schema"
)

// SaveTable persists the table as CSV at the given path using a temp file
// and an atomic rename. An empty path falls back to the table's source
// path. Clears the dirty flag on success.
func SaveTable(t *schema.Table, path string, logger *slog.Logger) error {
	if path == "" {
		path = t.Path
	}
	if path == "" {
		return fmt.Errorf("cannot save table: no path given and table has no source path")
	}

	text, err := CSVText(t)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file into %s: %w", path, err)
	}

	t.Dirty = false

	logger.Info("table saved",
		slog.String("path", path),
		slog.Int("rows", len(t.Rows)),
	)

	return nil
}

// FlushIfDirty saves the table to its source path only if it has unsaved
// changes.
func FlushIfDirty(t *schema.Table, logger *slog.Logger) error {
	if !t.Dirty {
		return nil
	}
	return SaveTable(t, "", logger)
}

// CSVText serializes the table to CSV text: a header row of labels, then
// one record per row in current row and column order. No trailing newline.
func CSVText(t *schema.Table) (string, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	w.Comma = t.Sep

	if err := w.Write(t.Labels); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(t.Labels))
	for _, row := range t.Rows {
		for i, label := range t.Labels {
			record[i] = formatCell(row[label])
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// formatCell renders a cell for CSV output. The missing marker renders as
// the empty cell.
func formatCell(v data.Value) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case int64:
		return strconv.FormatInt(c, 10)
	case int:
		return strconv.Itoa(c)
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", c)
	}
}
