package schema

import (
	"errors"
	"testing"

	"github.com/leengari/datatable/internal/domain/data"
	domainerrors "github.com/leengari/datatable/internal/domain/errors"
)

func TestFromColumns(t *testing.T) {
	t.Run("BuildsRowsInColumnOrder", func(t *testing.T) {
		tbl, err := FromColumns(map[string][]data.Value{
			"name": {"al", "bo"},
			"age":  {int64(30), int64(25)},
		}, []string{"name", "age"})
		if err != nil {
			t.Fatalf("FromColumns failed: %v", err)
		}

		if len(tbl.Labels) != 2 || tbl.Labels[0] != "name" {
			t.Errorf("unexpected labels: %v", tbl.Labels)
		}
		if len(tbl.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(tbl.Rows))
		}
		if tbl.Rows[1]["name"] != "bo" || tbl.Rows[1]["age"] != int64(25) {
			t.Errorf("unexpected second row: %v", tbl.Rows[1])
		}
	})

	t.Run("NilOrderSortsLabels", func(t *testing.T) {
		tbl, err := FromColumns(map[string][]data.Value{
			"z": {int64(1)},
			"a": {int64(2)},
		}, nil)
		if err != nil {
			t.Fatalf("FromColumns failed: %v", err)
		}
		if tbl.Labels[0] != "a" || tbl.Labels[1] != "z" {
			t.Errorf("expected sorted labels, got %v", tbl.Labels)
		}
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		_, err := FromColumns(map[string][]data.Value{
			"name": {"al", "bo"},
			"age":  {int64(30)},
		}, []string{"name", "age"})

		var shapeErr *domainerrors.ShapeError
		if !errors.As(err, &shapeErr) {
			t.Fatalf("expected ShapeError, got %v", err)
		}
		if shapeErr.Want != 2 || shapeErr.Got != 1 {
			t.Errorf("expected want=2 got=1, have want=%d got=%d", shapeErr.Want, shapeErr.Got)
		}
	})

	t.Run("OrderReferencingUnknownColumn", func(t *testing.T) {
		_, err := FromColumns(map[string][]data.Value{
			"name": {"al"},
		}, []string{"name", "age"})

		var colErr *domainerrors.ColumnNotFoundError
		if !errors.As(err, &colErr) {
			t.Fatalf("expected ColumnNotFoundError, got %v", err)
		}
	})

	t.Run("OrderOmittingColumn", func(t *testing.T) {
		_, err := FromColumns(map[string][]data.Value{
			"name": {"al"},
			"age":  {int64(30)},
		}, []string{"name"})

		var colErr *domainerrors.ColumnNotFoundError
		if !errors.As(err, &colErr) {
			t.Fatalf("expected ColumnNotFoundError, got %v", err)
		}
		if colErr.Label != "age" {
			t.Errorf("expected offending label age, got %q", colErr.Label)
		}
	})

	t.Run("EmptyColumnsYieldEmptyTable", func(t *testing.T) {
		tbl, err := FromColumns(map[string][]data.Value{}, nil)
		if err != nil {
			t.Fatalf("FromColumns failed: %v", err)
		}
		if len(tbl.Labels) != 0 || len(tbl.Rows) != 0 {
			t.Errorf("expected empty table, got labels=%v rows=%d", tbl.Labels, len(tbl.Rows))
		}
	})
}

func TestHasLabel(t *testing.T) {
	tbl := NewTable([]string{"name", "age"})
	if !tbl.HasLabel("name") {
		t.Error("expected name to be declared")
	}
	if tbl.HasLabel("height") {
		t.Error("did not expect height to be declared")
	}
}

func TestAdoptLabels(t *testing.T) {
	tbl := NewTable(nil)
	labels := []string{"a", "b"}
	tbl.AdoptLabels(labels)

	labels[0] = "mutated"
	if tbl.Labels[0] != "a" {
		t.Error("expected adopted labels to be copied")
	}
}
