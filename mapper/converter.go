package mapper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/c360studio/xea2rdf/export"
	"github.com/c360studio/xea2rdf/metrics"
	"github.com/c360studio/xea2rdf/storage"
)

// TableStats counts what happened to the rows of one table.
type TableStats struct {
	Table   string
	Read    int
	Emitted int
	Skipped int
}

// Stats summarizes a conversion run.
type Stats struct {
	Tables   []TableStats
	Duration time.Duration
}

// Subjects returns the number of subject blocks written.
func (s Stats) Subjects() int {
	n := 0
	for _, t := range s.Tables {
		n += t.Emitted
	}
	return n
}

// Converter writes one Turtle document for a Source.
type Converter struct {
	src     storage.Source
	out     io.Writer
	logger  *slog.Logger
	metrics *metrics.Collector
	tables  []Table
	now     func() time.Time
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records row counters in m.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Converter) {
		c.metrics = m
	}
}

// WithTables replaces the exported tables.
func WithTables(tables ...Table) Option {
	return func(c *Converter) {
		c.tables = tables
	}
}

// NewConverter creates a converter reading from src and writing to out.
// The converter does not close src.
func NewConverter(src storage.Source, out io.Writer, opts ...Option) *Converter {
	c := &Converter{
		src:    src,
		out:    out,
		logger: slog.Default(),
		tables: Tables(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run exports every table in order. The first failing table aborts the
// run; whatever was written before it is flushed to the output.
func (c *Converter) Run(ctx context.Context) (Stats, error) {
	start := c.now()
	stats := Stats{Tables: make([]TableStats, 0, len(c.tables))}
	w := export.NewTurtleWriter(c.out)

	err := c.run(ctx, w, &stats)
	if flushErr := w.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("flush output: %w", flushErr)
	}

	stats.Duration = c.now().Sub(start)
	if c.metrics != nil {
		c.metrics.Finished(stats.Duration, err == nil, c.now())
	}
	return stats, err
}

func (c *Converter) run(ctx context.Context, w *export.TurtleWriter, stats *Stats) error {
	if err := w.WritePrefixes(); err != nil {
		return fmt.Errorf("write prefixes: %w", err)
	}

	for _, t := range c.tables {
		ts, err := c.exportTable(ctx, w, t)
		stats.Tables = append(stats.Tables, ts)
		if err != nil {
			if c.metrics != nil {
				c.metrics.TableFailed(t.Name())
			}
			return fmt.Errorf("export %s: %w", t.Name(), err)
		}
		c.logger.Debug("Exported table",
			slog.String("table", ts.Table),
			slog.Int("read", ts.Read),
			slog.Int("emitted", ts.Emitted),
			slog.Int("skipped", ts.Skipped))
	}
	return nil
}

func (c *Converter) exportTable(ctx context.Context, w *export.TurtleWriter, t Table) (TableStats, error) {
	ts := TableStats{Table: t.Name()}

	rows, err := c.src.Rows(ctx, t.Name())
	if err != nil {
		return ts, err
	}
	defer rows.Close()

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return ts, err
		}
		ts.Read++
		if c.metrics != nil {
			c.metrics.RowRead(t.Name())
		}

		emitted, err := t.Emit(w, rows.Row())
		if err != nil {
			return ts, err
		}
		if emitted {
			ts.Emitted++
			if c.metrics != nil {
				c.metrics.SubjectEmitted(t.Name())
			}
		} else {
			ts.Skipped++
			if c.metrics != nil {
				c.metrics.RowSkipped(t.Name())
			}
		}
	}
	return ts, rows.Err()
}
