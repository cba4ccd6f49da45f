package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned when a bearer token does not have the expected
// three-segment structure or its payload segment is not decodable JSON.
var ErrMalformed = errors.New("malformed token")

// Identity is the client-side view of a decoded access token. It is derived
// exclusively from the token payload and never mutated; a new decode replaces
// it wholesale.
type Identity struct {
	Subject   string
	Roles     []string
	ExpiresAt int64
}

// Claims is the claim shape embedded in Kultura access tokens.
//
// Claims instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Decode extracts the identity embedded in raw without verifying the
// signature. Verification happened server-side when the token was issued;
// this is a read-only convenience decode, not a trust boundary.
//
// Decode returns an error wrapping [ErrMalformed] when raw is not a
// three-segment token, the payload is not valid base64 JSON, or any of the
// sub, roles, or exp claims is missing.
func Decode(raw string) (Identity, error) {
	if strings.Count(raw, ".") != 2 {
		return Identity{}, fmt.Errorf("%w: expected three segments", ErrMalformed)
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if claims.Subject == "" {
		return Identity{}, fmt.Errorf("%w: missing sub claim", ErrMalformed)
	}
	if claims.Roles == nil {
		return Identity{}, fmt.Errorf("%w: missing roles claim", ErrMalformed)
	}
	if claims.ExpiresAt == nil {
		return Identity{}, fmt.Errorf("%w: missing exp claim", ErrMalformed)
	}

	return Identity{
		Subject:   claims.Subject,
		Roles:     claims.Roles,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

// Expired reports whether the identity's expiry lies before now.
func (i Identity) Expired(now time.Time) bool {
	return i.ExpiresAt < now.Unix()
}

// Expired decodes raw and reports whether it has expired. A token that
// cannot be decoded is reported as expired (fail-closed).
func Expired(raw string, now time.Time) bool {
	identity, err := Decode(raw)
	if err != nil {
		return true
	}
	return identity.Expired(now)
}
