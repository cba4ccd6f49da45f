package adminkit

import internalmetrics "github.com/kultura-platform/adminkit/internal/metrics"

// NewMetrics creates a standalone [Metrics] instance configured by cfg.
// [Builder.Build] creates one automatically; this constructor exists for
// callers wiring a [gateway.Gateway] directly.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{Enabled: cfg.Enabled})
}
