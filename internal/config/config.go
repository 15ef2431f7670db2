package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings.
type Config struct {
	Narration NarrationConfig `yaml:"narration"`
	History   HistoryConfig   `yaml:"history"`
	Log       LogConfig       `yaml:"log"`
	UI        UIConfig        `yaml:"ui"`
}

// NarrationConfig selects the speech backend.
type NarrationConfig struct {
	// Backend is one of "auto", "command" or "none".
	Backend string `yaml:"backend"`

	// Program is the synthesiser to run for the command backend.
	// Default: espeak-ng (say on macOS).
	Program string `yaml:"program"`

	Voice string `yaml:"voice"`
}

// HistoryConfig controls the optional quiz history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"` // Default: $XDG_DATA_HOME/eduvision/eduvision.db
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error or off
	Path  string `yaml:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// ProcessingDelay is the pause shown while a session is being built.
	ProcessingDelay time.Duration `yaml:"processing_delay"`

	// Splash plays the opening animation before the upload screen.
	Splash bool `yaml:"splash"`
}

var validBackends = []string{"auto", "command", "none"}
var validLevels = []string{"debug", "info", "warn", "error", "off"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Narration: NarrationConfig{
			Backend: "auto",
		},
		Log: LogConfig{
			Level: "info",
			Path:  defaultLogPath(),
		},
		UI: UIConfig{
			ProcessingDelay: 2 * time.Second,
			Splash:          true,
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file at the
// default location is not an error; an explicitly named one is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := DefaultConfig()
	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := decode(f, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}

	applyEnv(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromReader decodes a YAML config from r over the defaults and
// validates the result.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := decode(r, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode yaml: %w", err)
	}
	return nil
}

// applyEnv overrides file settings from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("EDUVISION_DB"); v != "" {
		cfg.History.DBPath = v
	}
	if v := os.Getenv("EDUVISION_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("EDUVISION_VOICE"); v != "" {
		cfg.Narration.Voice = v
	}
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	cfg.Narration.Backend = strings.ToLower(cfg.Narration.Backend)
	if cfg.Narration.Backend == "" {
		cfg.Narration.Backend = "auto"
	}
	if !slices.Contains(validBackends, cfg.Narration.Backend) {
		errs = append(errs, fmt.Errorf("narration.backend %q is invalid; valid values: %s",
			cfg.Narration.Backend, strings.Join(validBackends, ", ")))
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if !slices.Contains(validLevels, cfg.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q is invalid; valid values: %s",
			cfg.Log.Level, strings.Join(validLevels, ", ")))
	}

	if cfg.UI.ProcessingDelay < 0 {
		errs = append(errs, fmt.Errorf("ui.processing_delay %s must not be negative", cfg.UI.ProcessingDelay))
	}

	return errors.Join(errs...)
}

// DefaultPath returns $XDG_CONFIG_HOME/eduvision/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "eduvision", "config.yaml")
}

func defaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "eduvision", "eduvision.log")
}
