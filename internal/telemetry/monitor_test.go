package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMonitorBoundedRetention(t *testing.T) {
	m := NewMonitor(4, prometheus.NewRegistry())

	for i := 0; i < 10; i++ {
		m.Observe("pricing.calculate", time.Millisecond, false)
	}

	assert.Equal(t, 4, m.Len())
	assert.Len(t, m.Recent(), 4)
}

func TestMonitorRecentOrder(t *testing.T) {
	m := NewMonitor(3, prometheus.NewRegistry())

	m.Observe("a", time.Millisecond, false)
	m.Observe("b", time.Millisecond, false)
	m.Observe("c", time.Millisecond, false)
	m.Observe("d", time.Millisecond, false)

	recent := m.Recent()
	if assert.Len(t, recent, 3) {
		assert.Equal(t, "b", recent[0].Operation)
		assert.Equal(t, "d", recent[2].Operation)
	}
}

func TestMonitorTrack(t *testing.T) {
	m := NewMonitor(8, prometheus.NewRegistry())

	err := m.Track("jobcard.generate", func() error { return errors.New("boom") })
	assert.Error(t, err)

	recent := m.Recent()
	if assert.Len(t, recent, 1) {
		assert.True(t, recent[0].Err)
	}
}

func TestNilMonitorIsSafe(t *testing.T) {
	var m *Monitor
	m.Observe("noop", time.Millisecond, false)
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Recent())
}
