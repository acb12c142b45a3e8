package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds application configuration
type Config struct {
	// Logging
	LogLevel string `mapstructure:"log_level"`
	Verbose  bool   `mapstructure:"verbose"`

	// Print a results table after converting
	Summary bool `mapstructure:"summary"`

	// Name filters applied to converted records
	Match   string `mapstructure:"match"`
	Exclude string `mapstructure:"exclude"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Verbose:  false,
		Summary:  false,
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.benchconv.yaml or ./.benchconv.yml
// 2. ~/.benchconv.yaml or ~/.benchconv.yml
// 3. $XDG_CONFIG_HOME/benchconv/config.yaml (or ~/.config/benchconv/config.yaml)
// 4. /etc/benchconv/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		loaded, err := LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".benchconv.yaml", ".benchconv.yml", "benchconv.yaml", "benchconv.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	var searchPaths []string

	// 1. Current directory
	if cwd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, cwd)
	}

	// 2. Home directory
	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}

	// 3. Config directory (e.g., ~/.config/benchconv/)
	if configDirErr == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "benchconv"))
	}

	// 4. System config
	searchPaths = append(searchPaths, "/etc/benchconv")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		// config.yaml only counts inside a benchconv directory
		if filepath.Base(dir) == "benchconv" {
			path := filepath.Join(dir, "config.yaml")
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BENCHCONV_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BENCHCONV_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("BENCHCONV_SUMMARY"); v == "true" || v == "1" {
		cfg.Summary = true
	}
}

// Level returns the zap level for the configured log level.
// Verbose always wins and unknown names fall back to warn.
func (c *Config) Level() zapcore.Level {
	if c.Verbose {
		return zapcore.DebugLevel
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// NewLogger creates a zap logger writing console-encoded entries to w
func (c *Config) NewLogger(w io.Writer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(c.Level()),
	)
	return zap.New(core, zap.AddCaller())
}
