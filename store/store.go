package store

import "context"

const (
	// TokenKey is the fixed storage key holding the raw bearer token.
	TokenKey = "auth_token"
	// IdentityKey is the fixed storage key holding the identity projection.
	IdentityKey = "user_data"
)

// Identity is the reduced identity projection persisted alongside the token.
// Expiry is intentionally absent; it is re-derived from the token on each
// check.
type Identity struct {
	Subject string   `json:"username"`
	Roles   []string `json:"roles"`
}

// Store persists the session token and its identity projection in a durable
// key-value store under two fixed keys. Loading a missing key reports absent,
// never an error. Clear removes both keys and is idempotent.
type Store interface {
	Save(ctx context.Context, token string, identity Identity) error
	LoadToken(ctx context.Context) (string, bool, error)
	LoadIdentity(ctx context.Context) (Identity, bool, error)
	Clear(ctx context.Context) error
}
