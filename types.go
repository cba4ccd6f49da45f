package adminkit

import (
	internalmetrics "github.com/kultura-platform/adminkit/internal/metrics"
	"github.com/kultura-platform/adminkit/token"
)

// State is the lifecycle state of a [Session].
type State uint8

const (
	// StateInitializing holds only while hydration from the session store
	// is in progress; guard decisions render a loading indicator for it.
	StateInitializing State = iota
	// StateUnauthenticated means no valid session is established.
	StateUnauthenticated
	// StateAuthenticated means a non-expired token and identity are held.
	StateAuthenticated
)

// String returns a short label for the state.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Identity is the decoded token identity re-exported from token/.
type Identity = token.Identity

// Credentials is a transient login credential pair. It is constructed fresh
// per login attempt and never persisted.
type Credentials struct {
	Identifier string
	Secret     string
}

// Ref references a backend entity by numeric ID, matching the backend's
// nested `{ "id": n }` shape.
type Ref struct {
	ID int64 `json:"id"`
}

// RegisterRequest is the account-creation payload. JSON field names are the
// backend's wire contract.
type RegisterRequest struct {
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	BirthDate string `json:"dateDeNaissance,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"motDePasse"`
	Role      Ref    `json:"role"`
	Company   *Ref   `json:"entreprise,omitempty"`
}

// loginResponse is the only wire shape the auth core depends on: the login
// endpoint must answer with a token field.
type loginResponse struct {
	Token string `json:"token"`
}

// MetricID identifies a specific counter in the in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	// MetricLoginSuccess counts completed logins.
	MetricLoginSuccess = internalmetrics.MetricLoginSuccess
	// MetricLoginFailure counts rejected or failed logins.
	MetricLoginFailure = internalmetrics.MetricLoginFailure
	// MetricRegisterSuccess counts completed registrations.
	MetricRegisterSuccess = internalmetrics.MetricRegisterSuccess
	// MetricRegisterFailure counts failed registrations.
	MetricRegisterFailure = internalmetrics.MetricRegisterFailure
	// MetricLogout counts logout calls.
	MetricLogout = internalmetrics.MetricLogout
	// MetricHydrateRestored counts sessions restored from storage at start.
	MetricHydrateRestored = internalmetrics.MetricHydrateRestored
	// MetricHydrateRejected counts stored sessions rejected as expired or
	// malformed at start.
	MetricHydrateRejected = internalmetrics.MetricHydrateRejected
	// MetricRequestIssued counts outgoing gateway requests.
	MetricRequestIssued = internalmetrics.MetricRequestIssued
	// MetricUnauthorizedIntercepted counts 401 interceptions.
	MetricUnauthorizedIntercepted = internalmetrics.MetricUnauthorizedIntercepted
	// MetricForbiddenRejected counts 403 rejections.
	MetricForbiddenRejected = internalmetrics.MetricForbiddenRejected
	// MetricServerFailure counts 5xx responses.
	MetricServerFailure = internalmetrics.MetricServerFailure
	// MetricNetworkFailure counts connectivity failures.
	MetricNetworkFailure = internalmetrics.MetricNetworkFailure
	// MetricClientFailure counts other non-2xx responses.
	MetricClientFailure = internalmetrics.MetricClientFailure
)

// Metrics holds atomic counters for session and gateway activity.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot = internalmetrics.Snapshot
