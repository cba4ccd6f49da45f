package metrics

import "sync/atomic"

// MetricID identifies a specific counter slot.
type MetricID uint16

const (
	MetricLoginSuccess MetricID = iota
	MetricLoginFailure
	MetricRegisterSuccess
	MetricRegisterFailure
	MetricLogout
	MetricHydrateRestored
	MetricHydrateRejected
	MetricRequestIssued
	MetricUnauthorizedIntercepted
	MetricForbiddenRejected
	MetricServerFailure
	MetricNetworkFailure
	MetricClientFailure

	MetricIDCount
)

var metricNames = [MetricIDCount]string{
	MetricLoginSuccess:            "login_success",
	MetricLoginFailure:            "login_failure",
	MetricRegisterSuccess:         "register_success",
	MetricRegisterFailure:         "register_failure",
	MetricLogout:                  "logout",
	MetricHydrateRestored:         "hydrate_restored",
	MetricHydrateRejected:         "hydrate_rejected",
	MetricRequestIssued:           "request_issued",
	MetricUnauthorizedIntercepted: "unauthorized_intercepted",
	MetricForbiddenRejected:       "forbidden_rejected",
	MetricServerFailure:           "server_failure",
	MetricNetworkFailure:          "network_failure",
	MetricClientFailure:           "client_failure",
}

// String returns the stable snake_case name of the metric.
func (id MetricID) String() string {
	if id >= MetricIDCount {
		return "unknown"
	}
	return metricNames[id]
}

// Config controls metric collection. When Enabled is false all operations
// are no-ops.
type Config struct {
	Enabled bool
}

// Metrics holds lock-free counters, one slot per MetricID. A nil *Metrics is
// a valid no-op receiver.
type Metrics struct {
	enabled  bool
	counters [MetricIDCount]atomic.Uint64
}

// New creates a Metrics instance configured by cfg.
func New(cfg Config) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc increments the counter for id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= MetricIDCount {
		return
	}
	m.counters[id].Add(1)
}

// Value returns the current value of the counter for id.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= MetricIDCount {
		return 0
	}
	return m.counters[id].Load()
}

// Snapshot is a point-in-time copy of all counters keyed by metric name.
type Snapshot struct {
	Counters map[string]uint64
}

// Snapshot returns a deep copy of the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{Counters: make(map[string]uint64, int(MetricIDCount))}
	if m == nil {
		return snap
	}
	for id := MetricID(0); id < MetricIDCount; id++ {
		snap.Counters[id.String()] = m.counters[id].Load()
	}
	return snap
}
