package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTable is returned by aggregates when there are no rows (or no
// present values) to aggregate over.
var ErrEmptyTable = errors.New("table has no rows")

// ParseError reports malformed CSV content encountered while loading.
type ParseError struct {
	Path   string // source file (empty for in-memory text)
	Line   int    // 1-based line where parsing failed (0 if unknown)
	Reason string
}

func (e *ParseError) Error() string {
	var parts []string

	parts = append(parts, "malformed csv")
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " - ")
}

func NewParseError(path string, line int, reason string) *ParseError {
	return &ParseError{Path: path, Line: line, Reason: reason}
}

// ShapeError reports mismatched column lengths on dictionary construction.
type ShapeError struct {
	Label string // column whose length disagrees
	Want  int    // expected row count
	Got   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("column %q has %d values, expected %d", e.Label, e.Got, e.Want)
}

func NewShapeError(label string, want, got int) *ShapeError {
	return &ShapeError{Label: label, Want: want, Got: got}
}

// ColumnNotFoundError reports an operation referencing an undeclared label.
type ColumnNotFoundError struct {
	Label string
	Known []string // declared labels, in table order
}

func (e *ColumnNotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("column %q not found (table has no columns)", e.Label)
	}
	return fmt.Sprintf("column %q not found (have: %s)", e.Label, strings.Join(e.Known, ", "))
}

func NewColumnNotFound(label string, known []string) *ColumnNotFoundError {
	return &ColumnNotFoundError{Label: label, Known: known}
}

// TypeError reports an aggregate requested over non-numeric data.
type TypeError struct {
	Label  string
	Value  interface{} // offending cell value (may be nil)
	Reason string
}

func (e *TypeError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("column %q is not numeric", e.Label))
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v (%T)", e.Value, e.Value))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " - ")
}

func NewTypeError(label string, value interface{}, reason string) *TypeError {
	return &TypeError{Label: label, Value: value, Reason: reason}
}
