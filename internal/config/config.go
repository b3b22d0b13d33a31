package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/common/model"

	"github.com/vango-dev/tagmaker/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tagmaker.json"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "tagmaker"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "tagmaker"
)

// Config represents the complete tagmaker.json configuration.
type Config struct {
	// Escape makes rendered output escape attribute values and content.
	Escape bool `json:"escape,omitempty"`

	// Log configures CLI logging.
	Log LogConfig `json:"log,omitempty"`

	// Metrics configures the Prometheus middleware.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Tracing configures the OpenTelemetry middleware.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// configPath is the path to the config file (not serialized).
	configPath string
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level,omitempty"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry tracing settings.
type TracingConfig struct {
	Enabled    bool   `json:"enabled,omitempty"`
	TracerName string `json:"tracerName,omitempty"`

	// IncludeInput records rules and HTML inputs on spans.
	IncludeInput bool `json:"includeInput,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for tagmaker.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithSubject(path).
				WithSuggestion("Create " + ConfigFileName + " or omit --config to use the defaults")
		}
		return nil, errors.New(errors.CodeConfigInvalid).WithSubject(path).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithSubject(path).
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigInvalid).WithSubject(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := ParseLevel(c.Log.Level); !ok {
		return errors.New(errors.CodeConfigInvalid).
			WithSubject("log.level").
			WithDetail("Unknown log level " + `"` + c.Log.Level + `"`).
			WithSuggestion("Use one of debug, info, warn or error")
	}
	if !model.IsValidMetricName(model.LabelValue(c.Metrics.Namespace + "_operations_total")) {
		return errors.New(errors.CodeConfigInvalid).
			WithSubject("metrics.namespace").
			WithDetail("Metric namespaces may only contain letters, digits, underscores and colons, and must not start with a digit").
			WithSuggestion(`Use a name such as "tagmaker"`)
	}
	return nil
}

// LogLevel returns the configured level as a slog.Level.
// Unknown levels fall back to info.
func (c *Config) LogLevel() slog.Level {
	level, _ := ParseLevel(c.Log.Level)
	return level
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
