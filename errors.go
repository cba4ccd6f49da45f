package adminkit

import (
	"errors"

	"github.com/kultura-platform/adminkit/token"
)

var (
	// ErrMalformedToken is returned when a token cannot be decoded; the
	// session treats it as "no valid session", never as a crash.
	ErrMalformedToken = token.ErrMalformed
	// ErrTokenMissing is returned when a successful login response carries
	// no token field.
	ErrTokenMissing = errors.New("token missing in login response")
)
