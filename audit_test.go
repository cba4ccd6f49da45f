package adminkit

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kultura-platform/adminkit/store"
)

func collectEvents(t *testing.T, sink *ChannelSink, n int) []AuditEvent {
	t.Helper()

	events := make([]AuditEvent, 0, n)
	timeout := time.After(2 * time.Second)
	for len(events) < n {
		select {
		case event := <-sink.Events():
			events = append(events, event)
		case <-timeout:
			t.Fatalf("collected %d audit events, want %d", len(events), n)
		}
	}
	return events
}

func TestAuditLoginLifecycle(t *testing.T) {
	ctx := context.Background()
	issued := forgeToken(t, "alice@example.com", []string{"ROLE_ADMIN"}, time.Now().Add(time.Hour))
	backend := newTestBackend(t, "alice@example.com", "pw123456", issued)

	sink := NewChannelSink(8)
	session, err := New().
		WithBaseURL(backend.server.URL).
		WithStore(store.NewMemory()).
		WithAuditSink(sink).
		Build(ctx)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer session.Close()

	if err := session.Login(ctx, "alice@example.com", "pw123456"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := session.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	events := collectEvents(t, sink, 2)

	if events[0].EventType != "login" || !events[0].Success {
		t.Errorf("first event = %+v, want successful login", events[0])
	}
	if events[0].Subject != "alice@example.com" {
		t.Errorf("login subject = %q", events[0].Subject)
	}
	if events[0].Timestamp.IsZero() {
		t.Error("login event missing timestamp")
	}
	if events[1].EventType != "logout" {
		t.Errorf("second event = %+v, want logout", events[1])
	}
}

func TestAuditFailedLoginCarriesError(t *testing.T) {
	ctx := context.Background()
	issued := forgeToken(t, "alice@example.com", []string{"USER"}, time.Now().Add(time.Hour))
	backend := newTestBackend(t, "alice@example.com", "correct", issued)

	sink := NewChannelSink(8)
	session, err := New().
		WithBaseURL(backend.server.URL).
		WithStore(store.NewMemory()).
		WithAuditSink(sink).
		Build(ctx)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer session.Close()

	_ = session.Login(ctx, "alice@example.com", "wrong")

	events := collectEvents(t, sink, 1)
	if events[0].EventType != "login" || events[0].Success {
		t.Errorf("event = %+v, want failed login", events[0])
	}
	if events[0].Error == "" {
		t.Error("failed login event missing error detail")
	}
}

func TestJSONWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), AuditEvent{EventType: "login", Subject: "alice", Success: true})
	sink.Emit(context.Background(), AuditEvent{EventType: "logout", Subject: "alice", Success: true})

	scanner := bufio.NewScanner(&buf)
	var lines int
	for scanner.Scan() {
		lines++
		var event AuditEvent
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines, err)
		}
	}
	if lines != 2 {
		t.Errorf("wrote %d lines, want 2", lines)
	}
}

func TestAuditDisabledByDefault(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	session, err := New().
		WithBaseURL(server.URL).
		WithStore(store.NewMemory()).
		Build(ctx)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Close must be safe with no dispatcher running.
	session.Close()
	session.Close()
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	blocked := make(chan struct{})
	sink := blockingSink{gate: blocked}

	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 1, DropIfFull: true}, sink)

	// First event occupies the worker, second fills the buffer, the rest
	// must drop rather than block.
	d.Emit(context.Background(), AuditEvent{EventType: "a"})
	d.Emit(context.Background(), AuditEvent{EventType: "b"})
	d.Emit(context.Background(), AuditEvent{EventType: "c"})
	d.Emit(context.Background(), AuditEvent{EventType: "d"})

	if d.Dropped() == 0 {
		t.Error("no events dropped with a full buffer")
	}

	close(blocked)
	d.Close()
}

type blockingSink struct {
	gate chan struct{}
}

func (s blockingSink) Emit(context.Context, AuditEvent) {
	<-s.gate
}
