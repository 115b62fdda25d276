package testutil

import (
	"testing"

	"github.com/leengari/datatable/internal/domain/data"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnExists checks if a column exists in a row
func AssertColumnExists(t *testing.T, row data.Row, label, context string) {
	t.Helper()
	if _, exists := row[label]; !exists {
		t.Errorf("%s: expected column '%s' to exist", context, label)
	}
}

// AssertColumnNotExists checks if a column does not exist in a row
func AssertColumnNotExists(t *testing.T, row data.Row, label, context string) {
	t.Helper()
	if _, exists := row[label]; exists {
		t.Errorf("%s: did not expect column '%s' to exist", context, label)
	}
}

// AssertCell checks a single cell value against an expectation
func AssertCell(t *testing.T, row data.Row, label string, expected data.Value, context string) {
	t.Helper()
	actual, exists := row[label]
	if !exists {
		t.Errorf("%s: expected column '%s' to exist", context, label)
		return
	}
	if !data.Equal(actual, expected) {
		t.Errorf("%s: column '%s': expected %v, got %v", context, label, expected, actual)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}
