// Package config loads, validates and persists ecomood settings from
// $ECOMOOD_HOME/config.yaml (default ~/.ecomood/config.yaml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ecomood/ecomood/internal/logging"
)

// SchemaVersion is the config file layout written by this build.
const SchemaVersion = "1.0.0"

// supportedSchema is the range of config file versions this build can read.
const supportedSchema = "^1.0.0"

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Environment overrides.
const (
	EnvHome      = "ECOMOOD_HOME"
	EnvLogLevel  = "ECOMOOD_LOG_LEVEL"
	EnvLogFormat = "ECOMOOD_LOG_FORMAT"
	EnvJournal   = "ECOMOOD_JOURNAL"
	EnvOutput    = "ECOMOOD_OUTPUT"
)

// Validation errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrInvalidFormat      = errors.New("output format must be 'table' or 'json'")
	ErrInvalidWindow      = errors.New("dashboard window must be one of 7d, 30d, 90d")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidPrecision   = errors.New("output precision must be between 0 and 6")
	ErrUnknownKey         = errors.New("unknown configuration key")
)

// Windows lists the dashboard windows accepted in configuration.
//
//nolint:gochecknoglobals // Read-only list shared with validation.
var Windows = []string{"7d", "30d", "90d"}

// Config is the full ecomood configuration.
type Config struct {
	Version   string          `yaml:"version"   json:"version"`
	Output    OutputConfig    `yaml:"output"    json:"output"`
	Logging   LoggingConfig   `yaml:"logging"   json:"logging"`
	Journal   JournalConfig   `yaml:"journal"   json:"journal"`
	Dashboard DashboardConfig `yaml:"dashboard" json:"dashboard"`
	Budget    BudgetConfig    `yaml:"budget"    json:"budget"`

	configPath string
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	Precision     int    `yaml:"precision"      json:"precision"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// JournalConfig locates the activity and reflection journal.
type JournalConfig struct {
	// Path is the YAML journal file. Empty means $ECOMOOD_HOME/journal.yaml.
	Path string `yaml:"path,omitempty" json:"path,omitempty"`
}

// DashboardConfig holds dashboard defaults.
type DashboardConfig struct {
	Window string `yaml:"window" json:"window"`

	// Strict reports activities that were counted as zero.
	Strict bool `yaml:"strict" json:"strict"`
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	return &Config{
		Version: SchemaVersion,
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
		Dashboard: DashboardConfig{
			Window: "7d",
		},
		Budget: BudgetConfig{
			Alerts:   DefaultAlerts(),
			ExitCode: 1,
		},
	}
}

// New returns the default configuration overlaid with the config file, if
// present, and the environment. A config file that cannot be read is logged
// and ignored.
func New() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err != nil {
		log.Warn().Err(err).Str("component", "config").Msg("cannot resolve config directory")
		applyEnv(cfg)
		return cfg
	}
	cfg.configPath = filepath.Join(dir, "config.yaml")

	if _, statErr := os.Stat(cfg.configPath); statErr == nil {
		if mergeErr := ShallowMergeYAML(cfg, cfg.configPath); mergeErr != nil {
			log.Warn().Err(mergeErr).Str("component", "config").Str("path", cfg.configPath).
				Msg("failed to load config file, using defaults")
			cfg = Default()
			cfg.configPath = filepath.Join(dir, "config.yaml")
		}
	}

	applyEnv(cfg)
	return cfg
}

// Load reads the config file at path on top of the defaults, without
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvJournal); v != "" {
		cfg.Journal.Path = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output.DefaultFormat = v
	}
}

// Path returns the file this configuration is saved to.
func (c *Config) Path() string {
	if c.configPath != "" {
		return c.configPath
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "config.yaml")
}

// SetPath changes the file this configuration is saved to.
func (c *Config) SetPath(path string) { c.configPath = path }

// JournalPath returns the configured journal path or the default one.
func (c *Config) JournalPath() (string, error) {
	if c.Journal.Path != "" {
		return c.Journal.Path, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "journal.yaml"), nil
}

// Save writes the configuration as YAML, creating its directory.
func (c *Config) Save() error {
	path := c.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := validateVersion(c.Version); err != nil {
		return err
	}
	if !slices.Contains([]string{FormatTable, FormatJSON}, c.Output.DefaultFormat) {
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Output.DefaultFormat)
	}
	const maxPrecision = 6
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: got %d", ErrInvalidPrecision, c.Output.Precision)
	}
	if !slices.Contains(Windows, c.Dashboard.Window) {
		return fmt.Errorf("%w: got %q", ErrInvalidWindow, c.Dashboard.Window)
	}
	if c.Logging.Level != "" {
		if _, err := parseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
		}
	}
	if err := c.Budget.Validate(); err != nil {
		return fmt.Errorf("budget: %w", err)
	}
	return nil
}

func validateVersion(v string) error {
	if v == "" {
		return nil
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, v, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, supportedSchema)
	}
	return nil
}

// Keys returns the dotted keys understood by Get and Set.
func Keys() []string {
	return []string{
		"version",
		"output.default_format",
		"output.precision",
		"logging.level",
		"logging.format",
		"logging.file",
		"journal.path",
		"dashboard.window",
		"dashboard.strict",
		"budget.daily_kg",
		"budget.exit_on_threshold",
		"budget.exit_code",
	}
}

// Get returns the value of a dotted key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "version":
		return c.Version, nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "output.precision":
		return strconv.Itoa(c.Output.Precision), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	case "journal.path":
		return c.Journal.Path, nil
	case "dashboard.window":
		return c.Dashboard.Window, nil
	case "dashboard.strict":
		return strconv.FormatBool(c.Dashboard.Strict), nil
	case "budget.daily_kg":
		return strconv.FormatFloat(c.Budget.DailyKg, 'f', -1, 64), nil
	case "budget.exit_on_threshold":
		return strconv.FormatBool(c.Budget.ExitOnThreshold), nil
	case "budget.exit_code":
		return strconv.Itoa(c.Budget.ExitCode), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set assigns a dotted key from its string form. It does not validate the
// resulting configuration; call Validate before saving.
//
//nolint:cyclop // One case per key.
func (c *Config) Set(key, value string) error {
	var err error
	switch key {
	case "version":
		c.Version = value
	case "output.default_format":
		c.Output.DefaultFormat = strings.ToLower(value)
	case "output.precision":
		c.Output.Precision, err = strconv.Atoi(value)
	case "logging.level":
		c.Logging.Level = strings.ToLower(value)
	case "logging.format":
		c.Logging.Format = strings.ToLower(value)
	case "logging.file":
		c.Logging.File = value
	case "journal.path":
		c.Journal.Path = value
	case "dashboard.window":
		c.Dashboard.Window = value
	case "dashboard.strict":
		c.Dashboard.Strict, err = strconv.ParseBool(value)
	case "budget.daily_kg":
		c.Budget.DailyKg, err = strconv.ParseFloat(value, 64)
	case "budget.exit_on_threshold":
		c.Budget.ExitOnThreshold, err = strconv.ParseBool(value)
	case "budget.exit_code":
		c.Budget.ExitCode, err = strconv.Atoi(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
	return nil
}
