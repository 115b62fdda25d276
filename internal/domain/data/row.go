package data

// Value is a single table cell. Cells hold a string, an int64, a float64,
// or nil for a missing value.
type Value = interface{}

// Row represents a single table row
// Key = column label, Value = cell value
type Row map[string]Value

// Copy creates a deep copy of the row to prevent mutation
func (r Row) Copy() Row {
	copy := make(Row, len(r))
	for k, v := range r {
		copy[k] = v
	}
	return copy
}

// Numeric reports the cell as a float64 for comparison purposes.
// Returns false for strings, missing values, and anything else.
func Numeric(v Value) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Equal compares two cell values. Numeric cells compare by value, so an
// int64 2 equals a float64 2.0. Missing values only equal missing values.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	af, aok := Numeric(a)
	bf, bok := Numeric(b)
	if aok && bok {
		return af == bf
	}
	return a == b
}
