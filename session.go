package adminkit

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/kultura-platform/adminkit/gateway"
	internalmetrics "github.com/kultura-platform/adminkit/internal/metrics"
	"github.com/kultura-platform/adminkit/store"
	"github.com/kultura-platform/adminkit/token"
)

// Session is the core state holder orchestrating login, registration,
// logout, and role-gated derived state. It is constructed once at
// application start through [Builder.Build], which also hydrates it from the
// session store so no caller ever observes [StateInitializing].
type Session struct {
	mu       sync.RWMutex
	state    State
	token    string
	identity Identity

	cfg     Config
	store   store.Store
	gateway *gateway.Gateway
	metrics *internalmetrics.Metrics
	audit   *auditDispatcher

	now func() time.Time
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated reports whether a non-expired session is established.
func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// Identity returns the decoded identity of the authenticated user.
func (s *Session) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return Identity{}, false
	}
	return s.identity, true
}

// Token returns the raw bearer token of the authenticated user.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return "", false
	}
	return s.token, true
}

// Gateway exposes the shared HTTP gateway so resource clients reuse the
// session's interception pipeline.
func (s *Session) Gateway() *gateway.Gateway {
	return s.gateway
}

// MetricsSnapshot returns a point-in-time copy of all counters.
func (s *Session) MetricsSnapshot() MetricsSnapshot {
	return s.metrics.Snapshot()
}

// Close flushes and stops the audit dispatcher. The session remains usable
// afterwards; further audit events are dropped.
func (s *Session) Close() {
	s.audit.Close()
}

// hydrate restores session state from the store. It runs exactly once,
// inside Build, before any guard decision can be made. A stored token that
// is expired or undecodable clears the store and resolves to
// Unauthenticated without any network call.
func (s *Session) hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.store.LoadToken(ctx)
	if err != nil || !ok {
		_ = s.store.Clear(ctx)
		s.state = StateUnauthenticated
		return
	}

	identity, decodeErr := token.Decode(raw)
	if decodeErr != nil || identity.Expired(s.now()) {
		_ = s.store.Clear(ctx)
		s.state = StateUnauthenticated
		s.metrics.Inc(internalmetrics.MetricHydrateRejected)
		s.emit(ctx, AuditEvent{
			EventType: "hydrate",
			Subject:   identity.Subject,
			Success:   false,
			Error:     "stored token expired or malformed",
		})
		return
	}

	// The stored projection is the identity of record; expiry always comes
	// from the token itself.
	if projection, found, loadErr := s.store.LoadIdentity(ctx); loadErr == nil && found {
		identity.Subject = projection.Subject
		identity.Roles = projection.Roles
	}

	s.token = raw
	s.identity = identity
	s.state = StateAuthenticated
	s.metrics.Inc(internalmetrics.MetricHydrateRestored)
	s.emit(ctx, AuditEvent{EventType: "hydrate", Subject: identity.Subject, Success: true})
}

// Login exchanges credentials for a bearer token, decodes it, persists it,
// and transitions to Authenticated. On any failure the session is left
// Unauthenticated and nothing is persisted; the returned error carries the
// user-visible message.
func (s *Session) Login(ctx context.Context, identifier, secret string) error {
	body := map[string]string{
		s.cfg.API.IdentifierField: identifier,
		"password":                secret,
	}

	var resp loginResponse
	if err := s.gateway.Post(ctx, s.cfg.API.LoginPath, body, &resp); err != nil {
		s.failLogin(ctx, identifier, err)
		return err
	}
	if resp.Token == "" {
		s.failLogin(ctx, identifier, ErrTokenMissing)
		return ErrTokenMissing
	}

	identity, err := token.Decode(resp.Token)
	if err != nil {
		s.failLogin(ctx, identifier, err)
		return err
	}

	projection := store.Identity{Subject: identity.Subject, Roles: identity.Roles}
	if err := s.store.Save(ctx, resp.Token, projection); err != nil {
		s.failLogin(ctx, identifier, err)
		return err
	}

	s.mu.Lock()
	s.token = resp.Token
	s.identity = identity
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.metrics.Inc(internalmetrics.MetricLoginSuccess)
	s.emit(ctx, AuditEvent{EventType: "login", Subject: identity.Subject, Success: true})
	return nil
}

func (s *Session) failLogin(ctx context.Context, identifier string, cause error) {
	s.mu.Lock()
	s.token = ""
	s.identity = Identity{}
	s.state = StateUnauthenticated
	s.mu.Unlock()

	s.metrics.Inc(internalmetrics.MetricLoginFailure)
	s.emit(ctx, AuditEvent{
		EventType: "login",
		Subject:   identifier,
		Success:   false,
		Error:     cause.Error(),
	})
}

// Register creates an account, then establishes a session by logging in with
// the payload's email and password. Registration itself never creates a
// session; login stays the single source of session creation.
func (s *Session) Register(ctx context.Context, req RegisterRequest) error {
	if err := s.gateway.Post(ctx, s.cfg.API.RegisterPath, req, nil); err != nil {
		s.metrics.Inc(internalmetrics.MetricRegisterFailure)
		s.emit(ctx, AuditEvent{
			EventType: "register",
			Subject:   req.Email,
			Success:   false,
			Error:     err.Error(),
		})
		return err
	}

	s.metrics.Inc(internalmetrics.MetricRegisterSuccess)
	s.emit(ctx, AuditEvent{EventType: "register", Subject: req.Email, Success: true})

	return s.Login(ctx, req.Email, req.Password)
}

// Logout clears the session store and transitions to Unauthenticated.
// Calling it when already unauthenticated is a no-op beyond the clear.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	subject := s.identity.Subject
	s.token = ""
	s.identity = Identity{}
	s.state = StateUnauthenticated
	s.mu.Unlock()

	err := s.store.Clear(ctx)

	s.metrics.Inc(internalmetrics.MetricLogout)
	s.emit(ctx, AuditEvent{EventType: "logout", Subject: subject, Success: err == nil})
	return err
}

// Invalidate drops the in-memory session after the gateway intercepted a
// 401 and already cleared the store. It is safe to call at any time.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.identity = Identity{}
	s.state = StateUnauthenticated
}

// HasRole reports whether the authenticated identity carries the role tag.
// Matching is case-insensitive, and a role equal to the tag with the
// configured scheme prefix (e.g. "ROLE_ADMIN" for "ADMIN") also matches.
// It returns false when unauthenticated.
func (s *Session) HasRole(tag string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateAuthenticated {
		return false
	}

	prefixed := s.cfg.Session.RolePrefix + tag
	for _, role := range s.identity.Roles {
		if strings.EqualFold(role, tag) || strings.EqualFold(role, prefixed) {
			return true
		}
	}
	return false
}

func (s *Session) emit(ctx context.Context, event AuditEvent) {
	if s.audit == nil {
		return
	}
	event.Timestamp = s.now()
	s.audit.Emit(ctx, event)
}
