// Package adminkit provides the client-side session core for the Kultura
// culture-event platform: token acquisition against the backend's login
// endpoint, unverified payload decoding, durable persistence, expiry-based
// invalidation, and role-gated access decisions.
//
// The package is designed for interactive clients: Session methods are safe
// to call from multiple goroutines after initialization through
// [Builder.Build], though only one session-mutating operation is expected to
// be in flight at a time. Two concurrent logins race last-writer-wins.
//
// # Architecture boundaries
//
// adminkit is the public surface. It exposes [Session], [Builder], [Config],
// and value types (AuditEvent, MetricsSnapshot, etc.). Token decoding lives
// in token/, persistence in store/, and the HTTP boundary in gateway/; the
// root package orchestrates them and owns every state transition.
//
// # What this package must NOT do
//
//   - Verify token signatures; the backend is the trust boundary.
//   - Perform I/O outside of Session methods and Build-time hydration.
//   - Render, print, or navigate; guard/ and callers own presentation.
package adminkit
