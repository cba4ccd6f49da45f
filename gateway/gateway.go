package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kultura-platform/adminkit/internal/metrics"
	"github.com/kultura-platform/adminkit/store"
)

const (
	defaultTimeout     = 10 * time.Second
	requestIDHeader    = "X-Request-ID"
	maxResponseBody    = 10 << 20
	messageNetwork     = "cannot reach the server"
	messageSessionGone = "session expired, please sign in again"
	messageForbidden   = "access not allowed"
	messageServer      = "server error"
	messageClient      = "request failed"
)

// Config is the wiring contract between the gateway and the backend. Paths
// and header names are backend configuration, not protocol this package
// defines.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	LoginPath   string
	HeaderName  string
	TokenPrefix string
}

func (c *Config) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.LoginPath == "" {
		c.LoginPath = "/login"
	}
	if c.HeaderName == "" {
		c.HeaderName = "Authorization"
	}
	if c.TokenPrefix == "" {
		c.TokenPrefix = "Bearer "
	}
}

// Option adjusts optional Gateway wiring.
type Option func(*Gateway)

// WithHTTPClient replaces the underlying HTTP client. The configured timeout
// is applied to the provided client when it has none.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		if client != nil {
			g.client = client
		}
	}
}

// WithMetrics wires interception counters into the gateway.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Gateway) {
		g.metrics = m
	}
}

// WithUnauthorizedHandler registers the hook invoked after a 401 has cleared
// the session store. The application shell owns any navigation side effect;
// the gateway itself never navigates. The hook is not invoked for the login
// path, where a 401 is an ordinary bad-credentials answer.
func WithUnauthorizedHandler(fn func()) Option {
	return func(g *Gateway) {
		g.onUnauthorized = fn
	}
}

// Gateway is the single HTTP client wrapping every backend call. It attaches
// the bearer token to outgoing requests and classifies every failure into a
// tagged [*Error] so no caller re-implements the 401 handling.
type Gateway struct {
	cfg            Config
	base           *url.URL
	client         *http.Client
	store          store.Store
	metrics        *metrics.Metrics
	onUnauthorized func()
}

// New creates a Gateway for the backend at cfg.BaseURL, persisting session
// state through st.
func New(cfg Config, st store.Store, opts ...Option) (*Gateway, error) {
	if st == nil {
		return nil, errors.New("session store required")
	}
	cfg.applyDefaults()

	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}

	g := &Gateway{
		cfg:    cfg,
		base:   base,
		client: &http.Client{Timeout: cfg.Timeout},
		store:  st,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.client.Timeout == 0 {
		g.client.Timeout = cfg.Timeout
	}
	return g, nil
}

// Get issues a GET request and decodes the JSON response into out when out
// is non-nil.
func (g *Gateway) Get(ctx context.Context, path string, out any) error {
	return g.doJSON(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body.
func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.doJSON(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body.
func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.doJSON(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// PostMultipart uploads a single file under the given form field and decodes
// the JSON response into out when out is non-nil.
func (g *Gateway) PostMultipart(ctx context.Context, path, field, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return &Error{Kind: KindClient, Message: messageClient, cause: err}
	}
	if _, err := io.Copy(part, r); err != nil {
		return &Error{Kind: KindClient, Message: messageClient, cause: err}
	}
	if err := writer.Close(); err != nil {
		return &Error{Kind: KindClient, Message: messageClient, cause: err}
	}

	return g.do(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), out)
}

// BaseURL returns the configured backend base URL without a trailing slash.
func (g *Gateway) BaseURL() string {
	return strings.TrimRight(g.base.String(), "/")
}

func (g *Gateway) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindClient, Message: messageClient, cause: err}
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return g.do(ctx, method, path, reader, contentType, out)
}

func (g *Gateway) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	g.metrics.Inc(metrics.MetricRequestIssued)

	req, err := http.NewRequestWithContext(ctx, method, g.BaseURL()+path, body)
	if err != nil {
		return &Error{Kind: KindClient, Message: messageClient, cause: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	// A failing store read is treated as an absent token; the backend will
	// answer 401 and the interception below takes over.
	if token, ok, err := g.store.LoadToken(ctx); err == nil && ok {
		req.Header.Set(g.cfg.HeaderName, g.cfg.TokenPrefix+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.metrics.Inc(metrics.MetricNetworkFailure)
		return &Error{Kind: KindNetwork, Message: messageNetwork, cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		g.metrics.Inc(metrics.MetricNetworkFailure)
		return &Error{Kind: KindNetwork, Message: messageNetwork, cause: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil && len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return &Error{Kind: KindClient, Status: resp.StatusCode, Message: "undecodable response body", cause: err}
			}
		}
		return nil
	}

	return g.intercept(ctx, req.URL.Path, resp.StatusCode, data)
}

func (g *Gateway) intercept(ctx context.Context, path string, status int, data []byte) error {
	switch {
	case status == http.StatusUnauthorized:
		g.metrics.Inc(metrics.MetricUnauthorizedIntercepted)
		_ = g.store.Clear(ctx)
		if path != g.cfg.LoginPath && g.onUnauthorized != nil {
			g.onUnauthorized()
		}
		return &Error{Kind: KindUnauthorized, Status: status, Message: messageSessionGone}

	case status == http.StatusForbidden:
		// The identity is still valid; the action is merely disallowed.
		g.metrics.Inc(metrics.MetricForbiddenRejected)
		return &Error{Kind: KindForbidden, Status: status, Message: messageForbidden}

	case status >= 500:
		g.metrics.Inc(metrics.MetricServerFailure)
		return &Error{Kind: KindServer, Status: status, Message: messageServer}

	default:
		g.metrics.Inc(metrics.MetricClientFailure)
		message := backendMessage(data)
		if message == "" {
			message = messageClient
		}
		return &Error{Kind: KindClient, Status: status, Message: message}
	}
}

func backendMessage(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Message
}
