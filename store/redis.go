package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis key pair, for shared kiosk or terminal
// deployments where several admin hosts present the same session.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a Redis-backed Store. Keys are namespaced under prefix
// (default "kultura").
func NewRedis(client *redis.Client, prefix string) (*Redis, error) {
	if client == nil {
		return nil, errors.New("redis client required")
	}
	if prefix == "" {
		prefix = "kultura"
	}
	return &Redis{client: client, prefix: prefix}, nil
}

func (r *Redis) tokenKey() string {
	return r.prefix + ":" + TokenKey
}

func (r *Redis) identityKey() string {
	return r.prefix + ":" + IdentityKey
}

// Save writes the token and identity projection in a single pipeline so a
// reader never observes one key without the other.
func (r *Redis) Save(ctx context.Context, token string, identity Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.tokenKey(), token, 0)
	pipe.Set(ctx, r.identityKey(), raw, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadToken reads the stored token, reporting absence on a missing key.
func (r *Redis) LoadToken(ctx context.Context) (string, bool, error) {
	token, err := r.client.Get(ctx, r.tokenKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load token: %w", err)
	}
	if token == "" {
		return "", false, nil
	}
	return token, true, nil
}

// LoadIdentity reads the stored identity projection. A corrupt value reports
// absence rather than an error.
func (r *Redis) LoadIdentity(ctx context.Context) (Identity, bool, error) {
	raw, err := r.client.Get(ctx, r.identityKey()).Result()
	if errors.Is(err, redis.Nil) {
		return Identity{}, false, nil
	}
	if err != nil {
		return Identity{}, false, fmt.Errorf("load identity: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return Identity{}, false, nil
	}
	return identity, true, nil
}

// Clear deletes both keys in one round-trip. Deleting absent keys is a no-op.
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.tokenKey(), r.identityKey()).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
