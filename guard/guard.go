package guard

import (
	"errors"

	adminkit "github.com/kultura-platform/adminkit"
)

var (
	// ErrLoginRequired is returned by [Require] when no session is
	// established; the caller redirects to the login flow.
	ErrLoginRequired = errors.New("login required")
	// ErrAccessDenied is returned by [Require] when the session lacks the
	// required role.
	ErrAccessDenied = errors.New("access denied: insufficient role")
)

// Decision is the outcome of evaluating a protected surface against the
// current session.
type Decision uint8

const (
	// DecisionLoading means the session is still initializing; render a
	// loading indicator and nothing else.
	DecisionLoading Decision = iota
	// DecisionRedirectLogin means no session is established; send the
	// caller to the login flow without rendering protected content.
	DecisionRedirectLogin
	// DecisionDenied means the session is valid but lacks the required
	// role; show an access-denied notice.
	DecisionDenied
	// DecisionAllow means the protected content may be rendered.
	DecisionAllow
)

// String returns a short label for the decision.
func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionDenied:
		return "denied"
	default:
		return "allow"
	}
}

// Evaluate applies the access decision table in order: initializing wins
// over everything, then authentication, then the optional role requirement.
// requiredRole may be empty, in which case any authenticated session is
// allowed. Evaluate has no side effects; all state transitions are owned by
// the session.
func Evaluate(session *adminkit.Session, requiredRole string) Decision {
	if session == nil {
		return DecisionRedirectLogin
	}

	switch session.State() {
	case adminkit.StateInitializing:
		return DecisionLoading
	case adminkit.StateUnauthenticated:
		return DecisionRedirectLogin
	}

	if requiredRole != "" && !session.HasRole(requiredRole) {
		return DecisionDenied
	}
	return DecisionAllow
}

// Require maps [Evaluate] onto an error suitable for gating a command or
// handler: nil when access is allowed, [ErrLoginRequired] or
// [ErrAccessDenied] otherwise. A still-initializing session counts as not
// logged in.
func Require(session *adminkit.Session, requiredRole string) error {
	switch Evaluate(session, requiredRole) {
	case DecisionAllow:
		return nil
	case DecisionDenied:
		return ErrAccessDenied
	default:
		return ErrLoginRequired
	}
}
