package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite is a read-only Source over an EA repository file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens path read-only and verifies it is a SQLite database.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	// One conversion, one connection.
	db.SetMaxOpenConns(1)

	// Ping does not read the file header; a schema query does.
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA schema_version").Scan(&version); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &SQLite{db: db}, nil
}

// readOnlyDSN builds a SQLite URI for path. The path is escaped so that
// '#', '?' and '%' in file names reach the file system unchanged.
func readOnlyDSN(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path), RawQuery: "mode=ro"}
	return u.String()
}

// Rows implements Source.
func (s *SQLite) Rows(ctx context.Context, table string) (Rows, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}

	columns, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("columns %s: %w", table, err)
	}

	return &sqliteRows{rows: rows, table: table, columns: columns}, nil
}

// Close releases the database handle. It is safe to call more than once.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

type sqliteRows struct {
	rows    *sql.Rows
	table   string
	columns []string
	ordinal int
	current Row
	err     error
}

func (r *sqliteRows) Next() bool {
	if r.err != nil || !r.rows.Next() {
		return false
	}

	raw := make([]any, len(r.columns))
	dest := make([]any, len(r.columns))
	for i := range raw {
		dest[i] = &raw[i]
	}
	if err := r.rows.Scan(dest...); err != nil {
		r.err = fmt.Errorf("scan %s: %w", r.table, err)
		return false
	}

	values := make([]*string, len(raw))
	for i, v := range raw {
		values[i] = textValue(v)
	}

	r.ordinal++
	r.current = NewRow(r.ordinal, r.columns, values)
	return true
}

func (r *sqliteRows) Row() Row {
	return r.current
}

func (r *sqliteRows) Err() error {
	if r.err != nil {
		return r.err
	}
	if err := r.rows.Err(); err != nil {
		return fmt.Errorf("read %s: %w", r.table, err)
	}
	return nil
}

func (r *sqliteRows) Close() error {
	return r.rows.Close()
}

// textValue renders a driver value the way SQLite's own text conversion
// does, so ids and flags compare as the strings stored in the file.
func textValue(v any) *string {
	var s string
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		s = x
	case []byte:
		s = string(x)
	case int64:
		s = strconv.FormatInt(x, 10)
	case float64:
		s = formatReal(x)
	case bool:
		if x {
			s = "1"
		} else {
			s = "0"
		}
	case time.Time:
		s = x.Format("2006-01-02 15:04:05")
	default:
		s = fmt.Sprint(x)
	}
	return &s
}

func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', 15, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
