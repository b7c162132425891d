// Package storage reads rows from an Enterprise Architect repository.
//
// The mapping layer only sees the Source interface. Schema is assumed, not
// introspected: a missing table surfaces as a query error from Rows.
package storage

import (
	"context"
	"strings"
)

// Source yields the rows of a table in storage order.
type Source interface {
	// Rows runs SELECT * on table. The caller must close the result.
	Rows(ctx context.Context, table string) (Rows, error)
	Close() error
}

// Rows is a forward-only cursor over a table.
type Rows interface {
	Next() bool
	Row() Row
	Err() error
	Close() error
}

// Row is one record. Column lookup is case-insensitive, matching how
// SQLite resolves column names. A nil value means SQL NULL.
type Row struct {
	ordinal int
	values  map[string]*string
}

// NewRow builds a row at the given 1-based ordinal from parallel column
// and value slices.
func NewRow(ordinal int, columns []string, values []*string) Row {
	m := make(map[string]*string, len(columns))
	for i, c := range columns {
		key := strings.ToLower(c)
		if _, dup := m[key]; dup {
			// SELECT * with duplicate names: first column wins.
			continue
		}
		if i < len(values) {
			m[key] = values[i]
		} else {
			m[key] = nil
		}
	}
	return Row{ordinal: ordinal, values: m}
}

// Get returns the value of column, or nil when it is NULL or absent.
func (r Row) Get(column string) *string {
	return r.values[strings.ToLower(column)]
}

// Ordinal returns the 1-based position of the row in its result set.
func (r Row) Ordinal() int {
	return r.ordinal
}
