package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the CLI configuration loaded from .kulturactl.yaml,
// KULTURACTL_* environment variables, and flags.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig points the CLI at a backend deployment.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StorageConfig selects where the session is persisted between invocations.
type StorageConfig struct {
	Backend     string `mapstructure:"backend"` // file, memory, redis
	SessionFile string `mapstructure:"session_file"`
	RedisAddr   string `mapstructure:"redis_addr"`
	RedisPrefix string `mapstructure:"redis_prefix"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads configuration from file and environment variables
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".kulturactl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/kulturactl")
	}

	v.SetEnvPrefix("KULTURACTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Storage.SessionFile == "" {
		cfg.Storage.SessionFile = defaultSessionFile()
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Every key needs a default so env-only values are seen by Unmarshal.
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.timeout", 10*time.Second)

	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.session_file", "")
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.redis_prefix", "kultura")

	v.SetDefault("logging.level", "info")

	v.SetDefault("output.colors", true)
}

func validate(cfg *Config) error {
	switch cfg.Storage.Backend {
	case "file", "memory", "redis":
	default:
		return fmt.Errorf("unknown storage backend %q: must be file, memory, or redis", cfg.Storage.Backend)
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.Logging.Level)
	}
	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kulturactl-session.json"
	}
	return filepath.Join(home, ".config", "kulturactl", "session.json")
}
