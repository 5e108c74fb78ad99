package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric name collisions.
	Registry *prometheus.Registry

	// Core pipeline metrics
	tasksTotal    *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	chunksPerDoc  *prometheus.HistogramVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers default system
// collectors, wraps all metrics with a constant `service` label, and creates
// an HTTP server exposing the /metrics endpoint.
//
// The setup includes:
//   - A dedicated Prometheus registry for the service
//   - Embedding pipeline counters and latency histograms
//   - A global "service" label applied to all metrics for easier aggregation
//
// Access metrics at: http://<address>/metrics
func NewMetrics(cfg Config) *Metrics {
	// Isolated registry avoids metric collisions when multiple services run
	// in the same process.
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically include the label:
	//   service="<cfg.ServiceName>"
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.tasksTotal = createCounterVec("embedding_tasks_total", "Total number of processed embedding tasks", []string{"document_type", "status"})
	m.stageDuration = createHistogramVec("pipeline_stage_duration_seconds", "Duration of embedding pipeline stages in seconds", []string{"stage"}, prometheus.DefBuckets)
	m.chunksPerDoc = createHistogramVec("document_chunks", "Number of chunks produced per document", []string{"document_type"}, []float64{0, 1, 2, 3, 5, 8, 13, 21})

	wrappedRegistry.MustRegister(
		m.tasksTotal,
		m.stageDuration,
		m.chunksPerDoc,
	)

	// Standard collectors provide essential runtime metrics for Go processes:
	//   - GoCollector: Memory usage, goroutines, GC stats
	//   - ProcessCollector: CPU, file descriptors, memory stats
	//   - BuildInfoCollector: Binary version/build info
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}
