package datatable

import (
	"github.com/leengari/datatable/internal/domain/errors"
)

// The facade returns the typed errors below unwrapped (except where a
// cause is attached with %w), so errors.As and errors.Is both work.
type (
	// ParseError reports malformed CSV content.
	ParseError = errors.ParseError

	// ShapeError reports mismatched column lengths on FromColumns.
	ShapeError = errors.ShapeError

	// ColumnNotFoundError reports an operation referencing an undeclared
	// column label.
	ColumnNotFoundError = errors.ColumnNotFoundError

	// TypeError reports an aggregate requested over non-numeric data.
	TypeError = errors.TypeError
)

// ErrEmptyTable is returned by Max and MaxWhere when there are no rows (or
// no present values in the column) to aggregate over.
var ErrEmptyTable = errors.ErrEmptyTable
