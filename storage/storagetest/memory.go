// Package storagetest provides an in-memory storage.Source for tests.
package storagetest

import (
	"context"
	"fmt"

	"github.com/c360studio/xea2rdf/storage"
)

// Table is an in-memory table: column names and rows of values in column
// order. A nil value is SQL NULL.
type Table struct {
	Columns []string
	Rows    [][]*string
}

// Memory is a storage.Source backed by in-memory tables. Tables listed in Failing
// return their error from Rows.
type Memory struct {
	Tables  map[string]Table
	Failing map[string]error
	closed  bool
}

// NewMemory creates an empty in-memory source.
func NewMemory() *Memory {
	return &Memory{
		Tables:  make(map[string]Table),
		Failing: make(map[string]error),
	}
}

// Put replaces the contents of a table.
func (m *Memory) Put(name string, t Table) {
	m.Tables[name] = t
}

// Rows implements storage.Source.
func (m *Memory) Rows(ctx context.Context, table string) (storage.Rows, error) {
	if m.closed {
		return nil, storage.ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.Failing[table]; ok {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	t, ok := m.Tables[table]
	if !ok {
		return nil, fmt.Errorf("query %s: %w", table, storage.ErrNoTable)
	}
	return &memoryRows{table: t}, nil
}

// Close implements storage.Source.
func (m *Memory) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (m *Memory) Closed() bool {
	return m.closed
}

type memoryRows struct {
	table Table
	pos   int
}

func (r *memoryRows) Next() bool {
	if r.pos >= len(r.table.Rows) {
		return false
	}
	r.pos++
	return true
}

func (r *memoryRows) Row() storage.Row {
	if r.pos == 0 {
		return storage.Row{}
	}
	return storage.NewRow(r.pos, r.table.Columns, r.table.Rows[r.pos-1])
}

func (r *memoryRows) Err() error   { return nil }
func (r *memoryRows) Close() error { return nil }
