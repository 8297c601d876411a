// Package metrics records run statistics for the node-exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "uidaiprep"

// Recorder holds the metrics of one run on a private registry.
type Recorder struct {
	registry      *prometheus.Registry
	filesLoaded   *prometheus.CounterVec
	rowsLoaded    *prometheus.CounterVec
	missingDates  *prometheus.CounterVec
	artifactRows  *prometheus.GaugeVec
	artifactBytes *prometheus.GaugeVec
	stageDuration *prometheus.GaugeVec
	dailyRows     prometheus.Gauge
	lastSuccess   prometheus.Gauge
}

// NewRecorder creates a recorder with every metric registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		filesLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_loaded_total",
			Help:      "CSV files read per record family.",
		}, []string{"family"}),
		rowsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_loaded_total",
			Help:      "Raw rows read per record family.",
		}, []string{"family"}),
		missingDates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "missing_dates_total",
			Help:      "Rows whose date could not be parsed, per record family.",
		}, []string{"family"}),
		artifactRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "artifact_records",
			Help:      "Rows written per artifact.",
		}, []string{"artifact"}),
		artifactBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "artifact_bytes",
			Help:      "Size in bytes of each written artifact.",
		}, []string{"artifact"}),
		stageDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time spent in each pipeline stage.",
		}, []string{"stage"}),
		dailyRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unified_daily_rows",
			Help:      "Rows in the unsampled unified daily table.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last completed run.",
		}),
	}

	r.registry.MustRegister(
		r.filesLoaded,
		r.rowsLoaded,
		r.missingDates,
		r.artifactRows,
		r.artifactBytes,
		r.stageDuration,
		r.dailyRows,
		r.lastSuccess,
	)

	return r
}

// FileLoaded records one CSV chunk of family with its row count.
func (r *Recorder) FileLoaded(family string, rows int) {
	r.filesLoaded.WithLabelValues(family).Inc()
	r.rowsLoaded.WithLabelValues(family).Add(float64(rows))
}

// MissingDates records unparseable dates of family.
func (r *Recorder) MissingDates(family string, n int) {
	r.missingDates.WithLabelValues(family).Add(float64(n))
}

// Artifact records a written file.
func (r *Recorder) Artifact(name string, records int, bytes int64) {
	r.artifactRows.WithLabelValues(name).Set(float64(records))
	r.artifactBytes.WithLabelValues(name).Set(float64(bytes))
}

// Stage records how long a stage took.
func (r *Recorder) Stage(name string, d time.Duration) {
	r.stageDuration.WithLabelValues(name).Set(d.Seconds())
}

// DailyRows records the unsampled unified table size.
func (r *Recorder) DailyRows(n int) {
	r.dailyRows.Set(float64(n))
}

// Succeeded stamps the completion time.
func (r *Recorder) Succeeded(t time.Time) {
	r.lastSuccess.Set(float64(t.Unix()))
}

// WriteTextfile writes every metric in the text exposition format to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	return nil
}
