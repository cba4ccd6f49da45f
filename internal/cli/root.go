// Package cli contains all commands for the kulturactl binary.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kultura-platform/adminkit/internal/output"
)

var (
	cfgFile   string
	verbose   bool
	quiet     bool
	colorMode string
	apiURL    string
	cfg       *Config
	logger    *slog.Logger
	version   = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kulturactl",
	Short: "Kultura platform administration CLI",
	Long: `kulturactl manages a Kultura backend deployment: accounts, events,
reservations, and uploaded media.

Sign in once; the session token is stored locally and reused until it
expires or the backend rejects it.

Example usage:
  kulturactl login alice@example.com   # Sign in and persist the session
  kulturactl whoami                    # Show the signed-in identity
  kulturactl events list               # List published events
  kulturactl users list                # List accounts (admin only)
  kulturactl logout                    # Drop the session`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .kulturactl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides config)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error

	// Setup logger
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err = LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	if cfg.Logging.Level == "debug" || verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	logger.Debug("configuration loaded",
		"base_url", cfg.API.BaseURL,
		"storage_backend", cfg.Storage.Backend,
		"session_file", cfg.Storage.SessionFile,
	)

	return nil
}

// newPrinter builds the printer shared by all commands.
func newPrinter() (*output.Printer, error) {
	mode, err := output.ParseColorMode(colorMode)
	if err != nil {
		return nil, err
	}
	return output.NewPrinterWithOptions(output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: cfg.Output.Colors,
		Quiet:        quiet,
	}), nil
}
