package adminkit

import (
	"errors"
	"fmt"
	"time"
)

// Config defines the full client configuration. Instances are configured
// during initialization and then treated as immutable.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Storage StorageConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig describes the backend contract: base URL, endpoint paths, and
// the bearer header layout. Paths are backend configuration, not a protocol
// this package defines.
type APIConfig struct {
	BaseURL      string
	Timeout      time.Duration
	LoginPath    string // default "/login"
	RegisterPath string // default "/api/users/all"
	HeaderName   string // default "Authorization"
	TokenPrefix  string // default "Bearer "

	// IdentifierField is the wire field name carrying the login
	// identifier. The deployed backend expects "email".
	IdentifierField string
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig controls role matching.
type SessionConfig struct {
	// RolePrefix is the scheme prefix considered equivalent during role
	// checks, so "ADMIN" also matches "ROLE_ADMIN". Default "ROLE_".
	RolePrefix string
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageBackend selects the session store implementation.
type StorageBackend string

const (
	// StorageMemory keeps the session in-process only.
	StorageMemory StorageBackend = "memory"
	// StorageFile persists the session to a JSON file on disk.
	StorageFile StorageBackend = "file"
	// StorageRedis persists the session to a Redis key pair.
	StorageRedis StorageBackend = "redis"
)

// StorageConfig selects and parameterizes the session store built by
// [Builder.Build] when no explicit store is injected.
type StorageConfig struct {
	Backend     StorageBackend // default memory
	FilePath    string         // required for StorageFile
	RedisPrefix string         // key namespace for StorageRedis
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig controls the asynchronous audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig controls in-process counters. When Enabled is false all
// metric operations are no-ops.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the configuration matching the deployed Kultura
// backend. Only API.BaseURL must be supplied by the caller.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout:         10 * time.Second,
			LoginPath:       "/login",
			RegisterPath:    "/api/users/all",
			HeaderName:      "Authorization",
			TokenPrefix:     "Bearer ",
			IdentifierField: "email",
		},
		Session: SessionConfig{
			RolePrefix: "ROLE_",
		},
		Storage: StorageConfig{
			Backend: StorageMemory,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 64,
			DropIfFull: true,
		},
	}
}

// Validate checks the configuration for internally inconsistent values.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("API base URL required")
	}
	if c.API.Timeout < 0 {
		return errors.New("invalid API timeout")
	}
	switch c.Storage.Backend {
	case "", StorageMemory, StorageRedis:
	case StorageFile:
		if c.Storage.FilePath == "" {
			return errors.New("file storage requires a session file path")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}
