package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SieveMetrics holds the Prometheus instruments recorded by the engine.
type SieveMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	segments   prometheus.Counter
	primes     prometheus.Counter
}

// NewSieveMetrics creates and registers the engine instruments against reg.
func NewSieveMetrics(reg prometheus.Registerer) *SieveMetrics {
	m := &SieveMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "primegen_operations_total",
			Help: "Completed prime generation operations by mode and status.",
		}, []string{"mode", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "primegen_operation_duration_seconds",
			Help:    "Duration of prime generation operations by mode.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12),
		}, []string{"mode"}),
		segments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "primegen_segments_sieved_total",
			Help: "Sieve segments processed across all operations.",
		}),
		primes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "primegen_primes_found_total",
			Help: "Primes produced across all operations.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.operations, m.duration, m.segments, m.primes)
	}
	return m
}

// ObserveOperation records a completed operation with its outcome.
func (m *SieveMetrics) ObserveOperation(mode string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.operations.WithLabelValues(mode, status).Inc()
	m.duration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// AddSegments records segments completed during a segmented run.
func (m *SieveMetrics) AddSegments(n int) {
	if n > 0 {
		m.segments.Add(float64(n))
	}
}

// AddPrimes records primes produced by an operation.
func (m *SieveMetrics) AddPrimes(n uint64) {
	if n > 0 {
		m.primes.Add(float64(n))
	}
}
