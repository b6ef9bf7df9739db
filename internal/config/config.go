package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 20 * 1024 * 1024 // 20MB; payslips are a few hundred KB
)

// Config holds all configuration for the payslip extraction CLI.
type Config struct {
	// WriteFiles switches from printing JSON on stdout to writing a
	// PAYSLIP.json beside each input.
	WriteFiles bool

	// Preflight enables the structural PDF validation pass before
	// extraction.
	Preflight bool

	LogLevel    string
	MaxFileSize int64

	// Inputs are the payslip PDF paths, in command-line order.
	Inputs []string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		WriteFiles:  false,
		Preflight:   true,
		LogLevel:    DefaultLogLevel,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and environment variables into a
// configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)
	cfg.Inputs = pflag.Args()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and
// defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("PAYSLIP")
	viper.AutomaticEnv()

	viper.SetDefault("d", cfg.WriteFiles)
	viper.SetDefault("preflight", cfg.Preflight)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.BoolP("d", "d", cfg.WriteFiles, "Write PAYSLIP.json beside each input instead of printing to stdout")
	pflag.Bool("preflight", cfg.Preflight, "Validate the PDF container before extraction")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum payslip file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("d", pflag.Lookup("d"))
	_ = viper.BindPFlag("preflight", pflag.Lookup("preflight"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nWA Department of Health payslip parser\n\n")
		fmt.Fprintf(os.Stderr, "  %s PAYSLIP            # print JSON to stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -d [PAYSLIP ...]   # create PAYSLIP.json for each pdf\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PAYSLIP_PREFLIGHT    Validate the PDF container before extraction\n")
		fmt.Fprintf(os.Stderr, "  PAYSLIP_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  PAYSLIP_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.WriteFiles = viper.GetBool("d")
	cfg.Preflight = viper.GetBool("preflight")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return errors.New("no payslip files given")
	}

	if !c.WriteFiles && len(c.Inputs) != 1 {
		return errors.New("stdout mode takes exactly one payslip; use -d for multiple files")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}
