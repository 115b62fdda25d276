package operations

import (
	"errors"
	"testing"

	"github.com/leengari/datatable/internal/domain/data"
	domainerrors "github.com/leengari/datatable/internal/domain/errors"
	"github.com/leengari/datatable/internal/query/operations/testutil"
)

func nameIs(name string) PredicateFunc {
	return func(row data.Row) bool {
		return row["name"] == name
	}
}

func TestSelectWhere(t *testing.T) {
	tbl := testutil.CreatePeopleTable()

	rows := SelectWhere(tbl, func(row data.Row) bool {
		age, ok := data.Numeric(row["age"])
		return ok && age == 25
	})
	testutil.AssertRowCount(t, len(rows), 2, "SelectWhere age=25")

	rows = SelectWhere(tbl, nameIs("nobody"))
	testutil.AssertRowCount(t, len(rows), 0, "SelectWhere no match")
}

func TestSelectAllPreservesOrder(t *testing.T) {
	tbl := testutil.CreatePeopleTable()
	rows := SelectAll(tbl)

	testutil.AssertRowCount(t, len(rows), 3, "SelectAll")
	testutil.AssertCell(t, rows[0], "name", "alice", "first row")
	testutil.AssertCell(t, rows[2], "name", "carol", "last row")
}

func TestInsertFillsMissingLabels(t *testing.T) {
	tbl := testutil.CreatePeopleTable()

	err := Insert(tbl, data.Row{"name": "dan"})
	testutil.AssertNoError(t, err, "Insert")
	testutil.AssertRowCount(t, len(tbl.Rows), 4, "Insert")

	last := tbl.Rows[len(tbl.Rows)-1]
	if v, exists := last["age"]; !exists || v != nil {
		t.Errorf("expected missing marker for age, got %v (exists=%v)", v, exists)
	}
	if !tbl.Dirty {
		t.Error("expected table to be marked dirty after insert")
	}
}

func TestInsertRejectsUnknownLabel(t *testing.T) {
	tbl := testutil.CreatePeopleTable()

	err := Insert(tbl, data.Row{"name": "dan", "height": int64(180)})
	var colErr *domainerrors.ColumnNotFoundError
	if !errors.As(err, &colErr) {
		t.Fatalf("expected ColumnNotFoundError, got %v", err)
	}
	testutil.AssertRowCount(t, len(tbl.Rows), 3, "failed insert")
}

func TestInsertCopiesCallerRow(t *testing.T) {
	tbl := testutil.CreatePeopleTable()
	row := data.Row{"name": "dan", "age": int64(1), "city": "kisumu"}

	testutil.AssertNoError(t, Insert(tbl, row), "Insert")
	row["name"] = "mutated"

	testutil.AssertCell(t, tbl.Rows[3], "name", "dan", "stored row unaffected by caller mutation")
}

func TestInsertAllValidatesBeforeAppending(t *testing.T) {
	tbl := testutil.CreatePeopleTable()

	err := InsertAll(tbl, []data.Row{
		{"name": "dan"},
		{"bogus": int64(1)},
	})
	testutil.AssertError(t, err, "InsertAll with bad row")
	testutil.AssertRowCount(t, len(tbl.Rows), 3, "failing batch appends nothing")

	err = InsertAll(tbl, []data.Row{
		{"name": "dan"},
		{"name": "eve"},
	})
	testutil.AssertNoError(t, err, "InsertAll")
	testutil.AssertRowCount(t, len(tbl.Rows), 5, "InsertAll")
}

func TestDelete(t *testing.T) {
	tbl := testutil.CreatePeopleTable()

	deleted := Delete(tbl, nameIs("alice"))
	if deleted != 1 {
		t.Errorf("expected 1 deleted, got %d", deleted)
	}
	testutil.AssertRowCount(t, len(tbl.Rows), 2, "Delete")
	testutil.AssertCell(t, tbl.Rows[0], "name", "bob", "order preserved after delete")

	deleted = Delete(tbl, nameIs("nobody"))
	if deleted != 0 {
		t.Errorf("expected 0 deleted, got %d", deleted)
	}
}

func TestUpdate(t *testing.T) {
	tbl := testutil.CreatePeopleTable()

	updated, err := Update(tbl, func(row data.Row) bool {
		age, ok := data.Numeric(row["age"])
		return ok && age == 25
	}, data.Row{"city": "eldoret"})
	testutil.AssertNoError(t, err, "Update")
	if updated != 2 {
		t.Errorf("expected 2 updated, got %d", updated)
	}
	testutil.AssertCell(t, tbl.Rows[1], "city", "eldoret", "updated row")
	testutil.AssertCell(t, tbl.Rows[0], "city", "nairobi", "unmatched row untouched")
}

func TestUpdateRejectsUnknownLabel(t *testing.T) {
	tbl := testutil.CreatePeopleTable()

	_, err := Update(tbl, nameIs("alice"), data.Row{"height": int64(1)})
	var colErr *domainerrors.ColumnNotFoundError
	if !errors.As(err, &colErr) {
		t.Fatalf("expected ColumnNotFoundError, got %v", err)
	}
}
