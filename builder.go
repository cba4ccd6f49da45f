package adminkit

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kultura-platform/adminkit/gateway"
	internalmetrics "github.com/kultura-platform/adminkit/internal/metrics"
	"github.com/kultura-platform/adminkit/store"
)

// Builder assembles a [Session] and its collaborators. A Builder is used
// once; Build hydrates the session so callers never observe
// [StateInitializing].
type Builder struct {
	config Config

	store      store.Store
	redis      *redis.Client
	httpClient *http.Client
	auditSink  AuditSink

	onUnauthorized func()

	built bool
}

// New creates a Builder seeded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithBaseURL sets the backend base URL without replacing other defaults.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.API.BaseURL = baseURL
	return b
}

// WithStore injects a session store, overriding the Storage configuration.
// Tests inject [store.Memory] here.
func (b *Builder) WithStore(st store.Store) *Builder {
	b.store = st
	return b
}

// WithRedis supplies the Redis client required by [StorageRedis].
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithHTTPClient replaces the gateway's underlying HTTP client.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithAuditSink wires a sink for session-lifecycle audit events and enables
// auditing.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithUnauthorizedHandler registers the hook the gateway invokes after a 401
// cleared the store. The application shell translates it into navigation.
func (b *Builder) WithUnauthorizedHandler(fn func()) *Builder {
	b.onUnauthorized = fn
	return b
}

// WithMetricsEnabled toggles in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration, wires the store and gateway, and
// hydrates the session from storage. Hydration is the only suspend point:
// when Build returns, the session is already Authenticated or
// Unauthenticated, never Initializing.
func (b *Builder) Build(ctx context.Context) (*Session, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := b.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// -------- SESSION STORE --------
	st := b.store
	if st == nil {
		var err error
		switch cfg.Storage.Backend {
		case "", StorageMemory:
			st = store.NewMemory()
		case StorageFile:
			st, err = store.NewFile(cfg.Storage.FilePath)
		case StorageRedis:
			if b.redis == nil {
				return nil, errors.New("redis storage requires redis client")
			}
			st, err = store.NewRedis(b.redis, cfg.Storage.RedisPrefix)
		}
		if err != nil {
			return nil, err
		}
	}

	// -------- METRICS --------
	m := internalmetrics.New(internalmetrics.Config{Enabled: cfg.Metrics.Enabled})

	// -------- GATEWAY --------
	session := &Session{
		cfg:     cfg,
		store:   st,
		metrics: m,
		state:   StateInitializing,
		now:     time.Now,
	}

	onUnauthorized := func() {
		session.Invalidate()
		if b.onUnauthorized != nil {
			b.onUnauthorized()
		}
	}

	gw, err := gateway.New(gateway.Config{
		BaseURL:     cfg.API.BaseURL,
		Timeout:     cfg.API.Timeout,
		LoginPath:   cfg.API.LoginPath,
		HeaderName:  cfg.API.HeaderName,
		TokenPrefix: cfg.API.TokenPrefix,
	}, st,
		gateway.WithHTTPClient(b.httpClient),
		gateway.WithMetrics(m),
		gateway.WithUnauthorizedHandler(onUnauthorized),
	)
	if err != nil {
		return nil, err
	}
	session.gateway = gw

	// -------- AUDIT --------
	session.audit = newAuditDispatcher(cfg.Audit, b.auditSink)

	session.hydrate(ctx)

	b.built = true

	return session, nil
}
