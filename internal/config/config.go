package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	alttex "github.com/NicholaCharlton/AltTeX-Personal"
)

type Config struct {
	// HTTP service
	Addr            string        `yaml:"addr"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Rendering
	SymbolsPath    string `yaml:"symbols"`
	IncludePackage bool   `yaml:"include_package"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func Default() Config {
	return Config{
		Addr:            ":8091",
		MaxBodyBytes:    10 << 20, // 10MB
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		IncludePackage:  true,
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

// Load reads configuration: defaults, then the YAML file named by ALTTEX_CONFIG, then ALTTEX_* variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("ALTTEX_CONFIG"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("open config file: %w", err)
		}

		defer file.Close()

		if err := cfg.Decode(file); err != nil {
			return cfg, err
		}
	}

	cfg.Addr = envOr("ALTTEX_ADDR", cfg.Addr)
	cfg.MaxBodyBytes = envInt64("ALTTEX_MAX_BODY", cfg.MaxBodyBytes)
	cfg.ReadTimeout = envDuration("ALTTEX_READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = envDuration("ALTTEX_WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.ShutdownTimeout = envDuration("ALTTEX_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.SymbolsPath = envOr("ALTTEX_SYMBOLS", cfg.SymbolsPath)
	cfg.IncludePackage = envBool("ALTTEX_INCLUDE_PACKAGE", cfg.IncludePackage)
	cfg.LogLevel = envOr("ALTTEX_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envOr("ALTTEX_LOG_FORMAT", cfg.LogFormat)

	return cfg, nil
}

// Decode overlays values found in a YAML document.
func (c *Config) Decode(r io.Reader) error {
	if err := yaml.NewDecoder(r).Decode(c); err != nil && err != io.EOF {
		return fmt.Errorf("parse config file: %w", err)
	}

	return nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ALTTEX_ADDR is required")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("ALTTEX_MAX_BODY must be positive")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return fmt.Errorf("ALTTEX_READ_TIMEOUT and ALTTEX_WRITE_TIMEOUT must be positive")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("ALTTEX_LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	return nil
}

// Logger builds the structured logger described by the configuration.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

// Symbols loads the configured symbol table, the embedded one when no path is set.
func (c Config) Symbols() (*alttex.SymbolTable, error) {
	if c.SymbolsPath == "" {
		return alttex.DefaultSymbols(), nil
	}

	file, err := os.Open(c.SymbolsPath)
	if err != nil {
		return nil, fmt.Errorf("open symbol table: %w", err)
	}

	defer file.Close()

	return alttex.LoadSymbolTable(file)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return level, fmt.Errorf("ALTTEX_LOG_LEVEL: %w", err)
	}
	return level, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
