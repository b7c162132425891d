// Package metrics records conversion counters with prometheus.
//
// A conversion is a batch job, so metrics are not served over HTTP.
// WriteTextfile stores them in the node exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "xea2rdf"

// Collector holds the counters for one conversion run.
type Collector struct {
	registry *prometheus.Registry

	rowsRead        *prometheus.CounterVec
	subjectsEmitted *prometheus.CounterVec
	rowsSkipped     *prometheus.CounterVec
	tableErrors     *prometheus.CounterVec
	duration        prometheus.Gauge
	lastSuccess     prometheus.Gauge
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		rowsRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_read_total",
			Help:      "Rows read from each source table.",
		}, []string{"table"}),
		subjectsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subjects_emitted_total",
			Help:      "Subject blocks written for each source table.",
		}, []string{"table"}),
		rowsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_skipped_total",
			Help:      "Rows that produced no subject block.",
		}, []string{"table"}),
		tableErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "table_errors_total",
			Help:      "Tables whose export failed.",
		}, []string{"table"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Wall time of the last conversion.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful conversion.",
		}),
	}

	c.registry.MustRegister(
		c.rowsRead,
		c.subjectsEmitted,
		c.rowsSkipped,
		c.tableErrors,
		c.duration,
		c.lastSuccess,
	)
	return c
}

// Registry returns the registry the collector's metrics live in.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RowRead counts a row read from table.
func (c *Collector) RowRead(table string) {
	c.rowsRead.WithLabelValues(table).Inc()
}

// SubjectEmitted counts a subject block written for table.
func (c *Collector) SubjectEmitted(table string) {
	c.subjectsEmitted.WithLabelValues(table).Inc()
}

// RowSkipped counts a row of table that produced no output.
func (c *Collector) RowSkipped(table string) {
	c.rowsSkipped.WithLabelValues(table).Inc()
}

// TableFailed counts a failed table export.
func (c *Collector) TableFailed(table string) {
	c.tableErrors.WithLabelValues(table).Inc()
}

// Finished records the run duration, and the completion time on success.
func (c *Collector) Finished(d time.Duration, success bool, now time.Time) {
	c.duration.Set(d.Seconds())
	if success {
		c.lastSuccess.Set(float64(now.Unix()))
	}
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
