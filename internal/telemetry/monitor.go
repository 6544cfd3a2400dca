// Package telemetry holds the injectable performance monitor used by the
// pricing and job-card services. It keeps a bounded ring of recent samples
// and mirrors them into prometheus instruments.
package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultCapacity = 512

// Sample is one recorded operation timing.
type Sample struct {
	Operation string
	Duration  time.Duration
	Err       bool
	At        time.Time
}

// Monitor records operation timings with bounded retention.
type Monitor struct {
	mu      sync.Mutex
	samples []Sample
	next    int
	full    bool

	durations *prometheus.HistogramVec
	errors    *prometheus.CounterVec
}

// NewMonitor constructs a Monitor retaining at most capacity samples.
// A capacity <= 0 falls back to the default.
func NewMonitor(capacity int, reg prometheus.Registerer) *Monitor {
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "estre",
		Name:      "operation_duration_seconds",
		Help:      "Duration of instrumented operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
	errors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "estre",
		Name:      "operation_errors_total",
		Help:      "Errors returned by instrumented operations.",
	}, []string{"operation"})

	if reg != nil {
		reg.MustRegister(durations, errors)
	}

	return &Monitor{
		samples:   make([]Sample, capacity),
		durations: durations,
		errors:    errors,
	}
}

// Observe records one operation timing.
func (m *Monitor) Observe(operation string, duration time.Duration, failed bool) {
	if m == nil {
		return
	}

	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
	if failed {
		m.errors.WithLabelValues(operation).Inc()
	}

	m.mu.Lock()
	m.samples[m.next] = Sample{
		Operation: operation,
		Duration:  duration,
		Err:       failed,
		At:        time.Now().UTC(),
	}
	m.next++
	if m.next == len(m.samples) {
		m.next = 0
		m.full = true
	}
	m.mu.Unlock()
}

// Track times fn and records the result under operation.
func (m *Monitor) Track(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	m.Observe(operation, time.Since(start), err != nil)
	return err
}

// Recent returns retained samples, oldest first.
func (m *Monitor) Recent() []Sample {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.full {
		out := make([]Sample, m.next)
		copy(out, m.samples[:m.next])
		return out
	}

	out := make([]Sample, 0, len(m.samples))
	out = append(out, m.samples[m.next:]...)
	out = append(out, m.samples[:m.next]...)
	return out
}

// Len reports how many samples are retained.
func (m *Monitor) Len() int {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.full {
		return len(m.samples)
	}
	return m.next
}
