package gateway

import (
	"errors"
	"fmt"
)

// Kind enumerates the failure classes a backend call can surface.
type Kind uint8

const (
	// KindNetwork means no response was received at all.
	KindNetwork Kind = iota
	// KindUnauthorized means the backend rejected the session (401).
	KindUnauthorized
	// KindForbidden means the session is valid but the action is not allowed (403).
	KindForbidden
	// KindServer means the backend failed with a 5xx status.
	KindServer
	// KindClient means any other non-2xx status.
	KindClient
)

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindServer:
		return "server"
	default:
		return "client"
	}
}

// Error is the tagged failure type returned by every Gateway call. Callers
// branch on Kind instead of inspecting response shapes ad hoc.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying transport error, when any.
func (e *Error) Unwrap() error {
	return e.cause
}

func isKind(err error, k Kind) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == k
}

// IsNetwork reports whether err is a Gateway connectivity failure.
func IsNetwork(err error) bool { return isKind(err, KindNetwork) }

// IsUnauthorized reports whether err is a Gateway 401 rejection.
func IsUnauthorized(err error) bool { return isKind(err, KindUnauthorized) }

// IsForbidden reports whether err is a Gateway 403 rejection.
func IsForbidden(err error) bool { return isKind(err, KindForbidden) }

// IsServer reports whether err is a Gateway 5xx failure.
func IsServer(err error) bool { return isKind(err, KindServer) }

// IsClient reports whether err is any other non-2xx Gateway failure.
func IsClient(err error) bool { return isKind(err, KindClient) }
