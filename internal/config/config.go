// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"voldash/internal/series"
)

// DefaultPath is where the binaries look for configuration when no -config flag is given.
const DefaultPath = "internal/config/config.yaml"

// Environment overrides applied after the YAML file.
const (
	EnvSeed        = "VOLDASH_SEED"
	EnvLogLevel    = "VOLDASH_LOG_LEVEL"
	EnvListenAddr  = "VOLDASH_LISTEN_ADDR"
	EnvMetricsAddr = "VOLDASH_METRICS_ADDR"
	EnvExportDir   = "VOLDASH_EXPORT_DIR"
)

// App captures process-wide runtime settings such as name, environment, listeners, and logging levels.
type App struct {
	Name        string `yaml:"name"`
	Env         string `yaml:"env"`
	ListenAddr  string `yaml:"listen_addr"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Generator controls how the snapshot is produced.
type Generator struct {
	// Seed makes the snapshot reproducible; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
	// Lengths overrides the number of periods per domain key.
	Lengths map[string]int `yaml:"lengths"`
	// Anchors overrides the first period per domain key (YYYY-MM-DD or RFC 3339).
	Anchors map[string]string `yaml:"anchors"`
}

// Stream configures the websocket heartbeat.
type Stream struct {
	HeartbeatMs int `yaml:"heartbeat_ms"`
}

// Export configures the batch exporter.
type Export struct {
	Dir       string   `yaml:"dir"`
	Formats   []string `yaml:"formats"`
	Precision int      `yaml:"precision"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App       App       `yaml:"app"`
	Generator Generator `yaml:"generator"`
	Stream    Stream    `yaml:"stream"`
	Export    Export    `yaml:"export"`
}

const (
	defaultListenAddr  = ":8080"
	defaultMetricsAddr = ":9090"
	defaultHeartbeatMs = 1000
	defaultPrecision   = 6
	maxPrecision       = 12
	maxLength          = 1_000_000
)

var exportFormats = map[string]bool{"jsonl": true, "csv": true, "parquet": true}

// Default returns a configuration that generates every dataset at its dashboard length.
func Default() *Config {
	cfg := &Config{
		App: App{Name: "voldash", Env: "dev", LogLevel: "info"},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML file from disk and hydrates a Config struct.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	config.applyDefaults()
	return &config, nil
}

// LoadRuntime is what the binaries use: YAML, then .env, then VOLDASH_* overrides, then validation.
func LoadRuntime(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LoadDotEnv populates the process environment from .env files; missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	existing := paths[:0:0]
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// ApplyEnv overlays VOLDASH_* variables found through lookup, usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok && strings.TrimSpace(v) != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Generator.Seed = seed
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.App.LogLevel = v
	}
	if v, ok := lookup(EnvListenAddr); ok && v != "" {
		c.App.ListenAddr = v
	}
	if v, ok := lookup(EnvMetricsAddr); ok && v != "" {
		c.App.MetricsAddr = v
	}
	if v, ok := lookup(EnvExportDir); ok && v != "" {
		c.Export.Dir = v
	}
	return nil
}

// Validate reports every out-of-range setting at once.
func (c *Config) Validate() error {
	var errs []error
	for key, n := range c.Generator.Lengths {
		if _, err := series.ParseDomain(key); err != nil {
			errs = append(errs, fmt.Errorf("generator.lengths: %w", err))
			continue
		}
		if n < 0 || n > maxLength {
			errs = append(errs, fmt.Errorf("generator.lengths.%s: must be within [0, %d], got %d", key, maxLength, n))
		}
	}
	for key, raw := range c.Generator.Anchors {
		if _, err := series.ParseDomain(key); err != nil {
			errs = append(errs, fmt.Errorf("generator.anchors: %w", err))
			continue
		}
		if _, err := parseAnchor(raw); err != nil {
			errs = append(errs, fmt.Errorf("generator.anchors.%s: %w", key, err))
		}
	}
	if c.Stream.HeartbeatMs <= 0 {
		errs = append(errs, fmt.Errorf("stream.heartbeat_ms: must be positive, got %d", c.Stream.HeartbeatMs))
	}
	for _, f := range c.Export.Formats {
		if !exportFormats[strings.ToLower(f)] {
			errs = append(errs, fmt.Errorf("export.formats: unknown format %q", f))
		}
	}
	if c.Export.Precision < 0 || c.Export.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("export.precision: must be within [0, %d], got %d", maxPrecision, c.Export.Precision))
	}
	return errors.Join(errs...)
}

// Heartbeat is the websocket push interval.
func (s Stream) Heartbeat() time.Duration {
	return time.Duration(s.HeartbeatMs) * time.Millisecond
}

// Options turns the generator settings into series options.
func (g Generator) Options() ([]series.Option, error) {
	var opts []series.Option
	if g.Seed != 0 {
		opts = append(opts, series.WithSeed(g.Seed))
	}
	for key, raw := range g.Anchors {
		d, err := series.ParseDomain(key)
		if err != nil {
			return nil, err
		}
		at, err := parseAnchor(raw)
		if err != nil {
			return nil, fmt.Errorf("anchor %s: %w", key, err)
		}
		opts = append(opts, series.WithAnchor(d, at))
	}
	return opts, nil
}

// DomainLengths resolves the configured length of every domain, falling back to its default.
func (g Generator) DomainLengths() (map[series.Domain]int, error) {
	out := make(map[series.Domain]int, len(series.Domains()))
	for _, d := range series.Domains() {
		out[d] = d.DefaultLength()
	}
	for key, n := range g.Lengths {
		d, err := series.ParseDomain(key)
		if err != nil {
			return nil, err
		}
		out[d] = n
	}
	return out, nil
}

func parseAnchor(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if at, err := time.Parse("2006-01-02", raw); err == nil {
		return at, nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("anchor %q is neither YYYY-MM-DD nor RFC 3339", raw)
	}
	return at.UTC(), nil
}

func (c *Config) applyDefaults() {
	if c.App.ListenAddr == "" {
		c.App.ListenAddr = defaultListenAddr
	}
	if c.App.MetricsAddr == "" {
		c.App.MetricsAddr = defaultMetricsAddr
	}
	if c.Stream.HeartbeatMs == 0 {
		c.Stream.HeartbeatMs = defaultHeartbeatMs
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "out"
	}
	if len(c.Export.Formats) == 0 {
		c.Export.Formats = []string{"jsonl"}
	}
	if c.Export.Precision == 0 {
		c.Export.Precision = defaultPrecision
	}
}
