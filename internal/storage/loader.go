package storage

import (
	"encoding/csv"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/leengari/datatable/internal/domain/data"
	"github.com/leengari/datatable/internal/domain/errors"
	"github.com/leengari/datatable/internal/domain/schema"
)

// LoadTable reads a CSV file into a table. The first record is the header
// (the declared labels); every following record becomes one row. A record
// with a deviating field count is a ParseError. Empty cells load as fill
// (nil for the missing marker).
func LoadTable(path string, sep rune, fill data.Value, logger *slog.Logger) (*schema.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()

	t, err := readTable(f, path, sep, fill)
	if err != nil {
		return nil, err
	}
	t.Path = path

	logger.Info("table loaded",
		slog.String("path", path),
		slog.Int("columns", len(t.Labels)),
		slog.Int("rows", len(t.Rows)),
	)

	return t, nil
}

// LoadTableText parses CSV text into a table. Used for round-trips of
// exported tables; no source path is recorded.
func LoadTableText(text string, sep rune, fill data.Value) (*schema.Table, error) {
	return readTable(strings.NewReader(text), "", sep, fill)
}

func readTable(r io.Reader, path string, sep rune, fill data.Value) (*schema.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = sep
	// FieldsPerRecord is left at zero so the header fixes the expected
	// field count and deviating records fail.

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParseError(path, 0, "missing header row")
	}
	if err != nil {
		return nil, asParseError(path, err)
	}

	t := schema.NewTable(header)
	t.Sep = sep

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, asParseError(path, err)
		}

		row := make(data.Row, len(header))
		for i, label := range header {
			row[label] = parseCell(record[i], fill)
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// parseCell types a CSV cell: int64 when the text is a valid integer,
// float64 when a valid float, the empty cell as fill, anything else as
// string.
func parseCell(s string, fill data.Value) data.Value {
	if s == "" {
		return fill
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// asParseError converts encoding/csv errors into the package's ParseError,
// keeping the line number when the reader reports one.
func asParseError(path string, err error) error {
	var csvErr *csv.ParseError
	if goerrors.As(err, &csvErr) {
		return errors.NewParseError(path, csvErr.Line, csvErr.Err.Error())
	}
	return errors.NewParseError(path, 0, err.Error())
}
