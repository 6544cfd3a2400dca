package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

func provideMonitor() *Monitor {
	return NewMonitor(defaultCapacity, prometheus.DefaultRegisterer)
}

// Module wires the shared performance monitor.
var Module = fx.Module("telemetry",
	fx.Provide(provideMonitor),
)
