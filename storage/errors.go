package storage

import "errors"

// Common storage errors.
var (
	// ErrClosed is returned when a source is used after Close.
	ErrClosed = errors.New("source closed")

	// ErrNoTable is returned by in-memory sources for a table that was never loaded.
	ErrNoTable = errors.New("no such table")
)
