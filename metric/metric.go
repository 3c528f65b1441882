// Package metric defines the Prometheus instrumentation for pattern
// detection runs.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all pipeline-level metrics.
type Metrics struct {
	PairsExamined    prometheus.Counter
	ClosePairs       prometheus.Counter
	PatternsDetected *prometheus.CounterVec
	StageDuration    *prometheus.HistogramVec
	PeriodsProcessed prometheus.Counter
	RecordsIndexed   prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all pipeline metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		PairsExamined: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pattrix",
				Subsystem: "detect",
				Name:      "pairs_examined_total",
				Help:      "Total number of node pairs examined for proximity",
			},
		),
		ClosePairs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pattrix",
				Subsystem: "detect",
				Name:      "close_pairs_total",
				Help:      "Total number of node pairs deemed close",
			},
		),
		PatternsDetected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pattrix",
				Subsystem: "detect",
				Name:      "patterns_total",
				Help:      "Total number of pattern detections",
			},
			[]string{"period"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pattrix",
				Subsystem: "pipeline",
				Name:      "stage_duration_seconds",
				Help:      "Pipeline stage duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		PeriodsProcessed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pattrix",
				Subsystem: "pipeline",
				Name:      "periods_processed_total",
				Help:      "Total number of periods processed",
			},
		),
		RecordsIndexed: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "pattrix",
				Subsystem: "counter",
				Name:      "records_indexed",
				Help:      "Dynamic-table rows indexed by the record counter in the last run",
			},
		),
	}
}

// Register registers all metrics with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.PairsExamined,
		m.ClosePairs,
		m.PatternsDetected,
		m.StageDuration,
		m.PeriodsProcessed,
		m.RecordsIndexed,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
