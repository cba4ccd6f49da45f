package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kultura-platform/adminkit"
	"github.com/kultura-platform/adminkit/guard"
	"github.com/kultura-platform/adminkit/internal/output"
)

// roleAdmin gates the account-management surface. Event, reservation, and
// file commands only need a signed-in session.
const roleAdmin = "ADMIN"

// openSession builds an adminkit session from the loaded configuration and
// hydrates it from local storage. Callers own the returned session and must
// Close it.
func openSession(ctx context.Context, printer *output.Printer) (*adminkit.Session, error) {
	if cfg.API.BaseURL == "" {
		return nil, errors.New("no backend configured: set api.base_url in .kulturactl.yaml or pass --api-url")
	}

	akCfg := adminkit.DefaultConfig()
	akCfg.API.BaseURL = cfg.API.BaseURL
	akCfg.API.Timeout = cfg.API.Timeout
	switch cfg.Storage.Backend {
	case "memory":
		akCfg.Storage.Backend = adminkit.StorageMemory
	case "redis":
		akCfg.Storage.Backend = adminkit.StorageRedis
		akCfg.Storage.RedisPrefix = cfg.Storage.RedisPrefix
	default:
		akCfg.Storage.Backend = adminkit.StorageFile
		akCfg.Storage.FilePath = cfg.Storage.SessionFile
	}

	builder := adminkit.New().
		WithConfig(akCfg).
		WithMetricsEnabled(verbose).
		WithUnauthorizedHandler(func() {
			printer.Warning("session expired, please sign in again with 'kulturactl login'")
		})

	if akCfg.Storage.Backend == adminkit.StorageRedis {
		builder.WithRedis(redis.NewClient(&redis.Options{
			Addr: cfg.Storage.RedisAddr,
		}))
	}

	session, err := builder.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening session: %w", err)
	}

	logger.Debug("session opened", "state", session.State().String())
	return session, nil
}

// openAuthenticated opens a session and fails early with a readable message
// when the caller is not signed in or lacks the required role. An empty role
// only requires a signed-in session.
func openAuthenticated(ctx context.Context, printer *output.Printer, requiredRole string) (*adminkit.Session, error) {
	session, err := openSession(ctx, printer)
	if err != nil {
		return nil, err
	}

	if err := guard.Require(session, requiredRole); err != nil {
		session.Close()
		switch {
		case errors.Is(err, guard.ErrLoginRequired):
			return nil, errors.New("not signed in: run 'kulturactl login' first")
		case errors.Is(err, guard.ErrAccessDenied):
			return nil, fmt.Errorf("access denied: the %s role is required", requiredRole)
		default:
			return nil, err
		}
	}

	return session, nil
}
