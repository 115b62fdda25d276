package testutil

import (
	"github.com/leengari/datatable/internal/domain/data"
	"github.com/leengari/datatable/internal/domain/schema"
)

// CreatePeopleTable creates a small table with sample data for testing
func CreatePeopleTable() *schema.Table {
	t := schema.NewTable([]string{"name", "age", "city"})
	t.Rows = []data.Row{
		{"name": "alice", "age": int64(30), "city": "nairobi"},
		{"name": "bob", "age": int64(25), "city": "mombasa"},
		{"name": "carol", "age": int64(25), "city": "nairobi"},
	}
	return t
}

// CreateEmptyTable creates a table with labels but no rows
func CreateEmptyTable() *schema.Table {
	return schema.NewTable([]string{"name", "age"})
}
