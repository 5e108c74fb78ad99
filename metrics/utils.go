package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IncrementTasks increments the embedding task counter for a document type
// and terminal status ("completed", "skipped", "failed").
// Example: metrics.IncrementTasks("recipe", "completed")
func (m *Metrics) IncrementTasks(documentType, status string) {
	m.tasksTotal.WithLabelValues(documentType, status).Inc()
}

// RecordStageDuration records the duration (in seconds) of a pipeline stage.
// Example: defer metrics.RecordStageDuration(time.Now(), "embed")
func (m *Metrics) RecordStageDuration(start time.Time, stage string) {
	duration := time.Since(start).Seconds()
	m.stageDuration.WithLabelValues(stage).Observe(duration)
}

// ObserveChunkCount records how many chunks a document produced.
func (m *Metrics) ObserveChunkCount(documentType string, count int) {
	m.chunksPerDoc.WithLabelValues(documentType).Observe(float64(count))
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.Registry.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.Registry.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(name, help, labels)
	m.Registry.MustRegister(gauge)
	return gauge
}

// createCounterVec defines a new CounterVec with standard options.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

// createGaugeVec defines a new GaugeVec with standard options.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
