package metrics

import (
	"sync"
	"testing"
)

func TestIncAndValue(t *testing.T) {
	m := New(Config{Enabled: true})

	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLogout)

	if got := m.Value(MetricLoginSuccess); got != 2 {
		t.Errorf("login_success = %d, want 2", got)
	}
	if got := m.Value(MetricLogout); got != 1 {
		t.Errorf("logout = %d, want 1", got)
	}
	if got := m.Value(MetricLoginFailure); got != 0 {
		t.Errorf("login_failure = %d, want 0", got)
	}
}

func TestDisabledMetricsAreNoOps(t *testing.T) {
	m := New(Config{})
	m.Inc(MetricLoginSuccess)

	if got := m.Value(MetricLoginSuccess); got != 0 {
		t.Errorf("disabled counter = %d, want 0", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricLoginSuccess)

	if got := m.Value(MetricLoginSuccess); got != 0 {
		t.Errorf("nil counter = %d, want 0", got)
	}
	if snap := m.Snapshot(); len(snap.Counters) != 0 {
		t.Errorf("nil snapshot has %d entries", len(snap.Counters))
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	m := New(Config{Enabled: true})
	m.Inc(MetricRequestIssued)

	snap := m.Snapshot()
	m.Inc(MetricRequestIssued)

	if snap.Counters["request_issued"] != 1 {
		t.Errorf("snapshot = %d, want the value at capture time", snap.Counters["request_issued"])
	}
	if m.Value(MetricRequestIssued) != 2 {
		t.Errorf("live value = %d, want 2", m.Value(MetricRequestIssued))
	}
}

func TestConcurrentInc(t *testing.T) {
	m := New(Config{Enabled: true})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Inc(MetricRequestIssued)
			}
		}()
	}
	wg.Wait()

	if got := m.Value(MetricRequestIssued); got != 8000 {
		t.Errorf("request_issued = %d, want 8000", got)
	}
}

func TestMetricNamesAreComplete(t *testing.T) {
	for id := MetricID(0); id < MetricIDCount; id++ {
		if id.String() == "" {
			t.Errorf("metric %d has no name", id)
		}
	}
	if MetricIDCount.String() != "unknown" {
		t.Error("out-of-range metric id must report unknown")
	}
}
