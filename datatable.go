// Package datatable wraps one in-memory table backed by a CSV file and
// answers queries and mutations expressed as column→value dictionaries.
//
// The table is an exclusively-owned, unshared resource with no internal
// locking; callers reusing a DataTable across goroutines must serialize
// access themselves.
package datatable

import (
	"log/slog"

	"github.com/leengari/datatable/internal/domain/data"
	"github.com/leengari/datatable/internal/domain/schema"
	"github.com/leengari/datatable/internal/observer"
	"github.com/leengari/datatable/internal/query/operations"
	"github.com/leengari/datatable/internal/query/operations/projection"
	"github.com/leengari/datatable/internal/query/selector"
	"github.com/leengari/datatable/internal/storage"
)

// Value is a single table cell: string, int64, float64, or nil for a
// missing value.
type Value = data.Value

// Row maps column labels to cell values.
type Row = data.Row

// Selector maps column labels to required cell values; a row matches when
// every pair matches (logical AND).
type Selector = selector.Selector

// Observer receives one event per successful mutation.
type Observer = observer.Observer

// Event describes one successful mutation.
type Event = observer.Event

// DataTable holds one table in memory. Construct with FromCSV,
// FromCSVString, FromColumns, or New.
type DataTable struct {
	tbl       *schema.Table
	logger    *slog.Logger
	observers []observer.Observer
	autoSave  bool
}

// New creates an empty table with no labels. The first inserted row
// declares the labels.
func New(opts ...Option) *DataTable {
	cfg := applyOptions(opts)
	tbl := schema.NewTable(nil)
	tbl.Sep = cfg.sep
	return newFacade(tbl, cfg)
}

// FromCSV reads the CSV file at path into a new table. A missing file
// surfaces the wrapped fs.ErrNotExist from the open; malformed content
// surfaces a *ParseError.
func FromCSV(path string, opts ...Option) (*DataTable, error) {
	cfg := applyOptions(opts)
	tbl, err := storage.LoadTable(path, cfg.sep, cfg.fill, cfg.logger)
	if err != nil {
		return nil, err
	}
	return newFacade(tbl, cfg), nil
}

// FromCSVString parses CSV text into a new table. The table has no source
// path; Save requires an explicit one.
func FromCSVString(text string, opts ...Option) (*DataTable, error) {
	cfg := applyOptions(opts)
	tbl, err := storage.LoadTableText(text, cfg.sep, cfg.fill)
	if err != nil {
		return nil, err
	}
	return newFacade(tbl, cfg), nil
}

// FromColumns builds a table from a column map: label → ordered values.
// All columns must share the same length or a *ShapeError is returned.
// order fixes the label order; nil order sorts the labels.
func FromColumns(cols map[string][]Value, order []string, opts ...Option) (*DataTable, error) {
	cfg := applyOptions(opts)
	tbl, err := schema.FromColumns(cols, order)
	if err != nil {
		return nil, err
	}
	tbl.Sep = cfg.sep
	return newFacade(tbl, cfg), nil
}

func newFacade(tbl *schema.Table, cfg config) *DataTable {
	return &DataTable{
		tbl:       tbl,
		logger:    cfg.logger,
		observers: cfg.observers,
		autoSave:  cfg.autoSave,
	}
}

// Labels returns the ordered column labels
func (dt *DataTable) Labels() []string {
	return append([]string(nil), dt.tbl.Labels...)
}

// Len returns the current row count
func (dt *DataTable) Len() int {
	return len(dt.tbl.Rows)
}

// Select returns all rows where every selector column equals the given
// value. A nil or empty selector returns all rows. No match yields an
// empty result, not an error; an undeclared selector label yields a
// *ColumnNotFoundError.
func (dt *DataTable) Select(where Selector) ([]Row, error) {
	if err := selector.Validate(dt.tbl, where); err != nil {
		return nil, err
	}
	if len(where) == 0 {
		return operations.SelectAll(dt.tbl), nil
	}
	return operations.SelectWhere(dt.tbl, dt.match(where)), nil
}

// SelectColumns behaves like Select with the result rows narrowed to the
// given labels.
func (dt *DataTable) SelectColumns(where Selector, labels ...string) ([]Row, error) {
	if err := projection.Validate(dt.tbl, labels); err != nil {
		return nil, err
	}
	rows, err := dt.Select(where)
	if err != nil {
		return nil, err
	}
	return projection.Project(rows, labels), nil
}

// Insert appends one row at the end. Declared labels absent from the row
// are filled with the missing marker; an undeclared label is a
// *ColumnNotFoundError.
func (dt *DataTable) Insert(row Row) error {
	if err := operations.Insert(dt.tbl, row); err != nil {
		return err
	}
	return dt.finishMutation(observer.EventInsert, 1)
}

// InsertRows appends several rows in order. All rows are validated before
// any is appended, so a failing batch appends nothing.
func (dt *DataTable) InsertRows(rows []Row) error {
	if err := operations.InsertAll(dt.tbl, rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return dt.finishMutation(observer.EventInsert, len(rows))
}

// Delete removes all rows matching the selector and returns the count
// removed (zero is not an error).
func (dt *DataTable) Delete(where Selector) (int, error) {
	if err := selector.Validate(dt.tbl, where); err != nil {
		return 0, err
	}
	deleted := operations.Delete(dt.tbl, dt.match(where))
	if deleted == 0 {
		return 0, nil
	}
	return deleted, dt.finishMutation(observer.EventDelete, deleted)
}

// Update sets the given columns on every row matching the selector and
// returns the count updated. Matching happens against the pre-update rows;
// there is no rollback of rows already updated when a later row fails.
func (dt *DataTable) Update(where Selector, set Row) (int, error) {
	if err := selector.Validate(dt.tbl, where); err != nil {
		return 0, err
	}
	updated, err := operations.Update(dt.tbl, dt.match(where), set)
	if err != nil {
		return updated, err
	}
	if updated == 0 {
		return 0, nil
	}
	return updated, dt.finishMutation(observer.EventUpdate, updated)
}

// Max returns the maximum value of a numeric column. An undeclared label
// is a *ColumnNotFoundError, a non-numeric cell a *TypeError, and a column
// with no present values ErrEmptyTable.
func (dt *DataTable) Max(label string) (Value, error) {
	return operations.Max(dt.tbl, label)
}

// MaxWhere computes the maximum per requested label over the rows matching
// the selector. No labels means all declared labels.
func (dt *DataTable) MaxWhere(where Selector, labels ...string) (map[string]Value, error) {
	if err := selector.Validate(dt.tbl, where); err != nil {
		return nil, err
	}
	if err := projection.Validate(dt.tbl, labels); err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		labels = dt.tbl.Labels
	}

	rows := dt.tbl.Rows
	if len(where) > 0 {
		rows = operations.SelectWhere(dt.tbl, dt.match(where))
	}

	result := make(map[string]Value, len(labels))
	for _, label := range labels {
		v, err := operations.MaxOf(rows, label)
		if err != nil {
			return nil, err
		}
		result[label] = v
	}
	return result, nil
}

// CSVString serializes the table to CSV text: a header row of labels, then
// one record per row in current row and column order, no trailing newline.
func (dt *DataTable) CSVString() (string, error) {
	return storage.CSVText(dt.tbl)
}

// Save writes the table as CSV to path using a temp file and an atomic
// rename. An empty path saves back to the source path; saving a table that
// has neither is an error.
func (dt *DataTable) Save(path string) error {
	if err := storage.SaveTable(dt.tbl, path, dt.logger); err != nil {
		return err
	}
	dt.emit(observer.EventSave, len(dt.tbl.Rows))
	return nil
}

// FlushIfDirty saves the table back to its source path only when it has
// been mutated since the last save.
func (dt *DataTable) FlushIfDirty() error {
	return storage.FlushIfDirty(dt.tbl, dt.logger)
}

func (dt *DataTable) match(where Selector) operations.PredicateFunc {
	return func(row Row) bool {
		return selector.Matches(row, where)
	}
}

// finishMutation emits the mutation event and, under auto-save, flushes
// the table back to its source path.
func (dt *DataTable) finishMutation(typ observer.EventType, rows int) error {
	dt.emit(typ, rows)
	if dt.autoSave {
		return storage.FlushIfDirty(dt.tbl, dt.logger)
	}
	return nil
}

func (dt *DataTable) emit(typ observer.EventType, rows int) {
	if len(dt.observers) == 0 {
		return
	}
	event := observer.NewEvent(typ, dt.tbl.Path, rows)
	for _, o := range dt.observers {
		o.OnEvent(event)
	}
}
