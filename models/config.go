package models

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	appconfig "realtime-translator/internal/config"
	"realtime-translator/internal/text"
)

// Config holds application settings, loaded from config.yaml.
type Config struct {
	// Translation endpoints, tried in order
	Endpoints []string `yaml:"endpoints"`

	// Basic settings
	DefaultSource string `yaml:"default_source"`
	DefaultTarget string `yaml:"default_target"`
	AutoTranslate bool   `yaml:"auto_translate"`
	DebounceMS    int    `yaml:"debounce_ms"`
	LogLevel      string `yaml:"log_level"`

	Storage StorageConfig `yaml:"storage"`
	Speech  SpeechConfig  `yaml:"speech"`
	Server  ServerConfig  `yaml:"server"`

	path string
}

// StorageConfig selects where translation history is kept.
type StorageConfig struct {
	// Backend is sqlite, preferences (desktop app only) or memory
	Backend string `yaml:"backend"`
	// Path is the SQLite database file
	Path string `yaml:"path"`
}

// SpeechConfig overrides the platform speech helpers.
type SpeechConfig struct {
	// SynthesizerCommand replaces say/espeak-ng. Text is passed on stdin.
	SynthesizerCommand string `yaml:"synthesizer_command"`
	// RecognizerCommand streams JSON-line recognition events on stdout.
	RecognizerCommand string `yaml:"recognizer_command"`
}

// ServerConfig configures the local HTTP control surface.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// ConfigDir returns ~/.config/realtime-translator.
func ConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", appconfig.AppName)
}

// DefaultConfigPath returns the default config.yaml location.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func DefaultConfig() *Config {
	return &Config{
		Endpoints:     appconfig.DefaultEndpoints(),
		DefaultSource: appconfig.DefaultSourceLang,
		DefaultTarget: appconfig.DefaultTargetLang,
		AutoTranslate: true,
		DebounceMS:    int(appconfig.DebounceDelay / time.Millisecond),
		LogLevel:      "info",
		Storage: StorageConfig{
			Backend: appconfig.StorageSQLite,
			Path:    filepath.Join(ConfigDir(), "history.db"),
		},
		Server: ServerConfig{
			Port: appconfig.DefaultServerPort,
		},
		path: DefaultConfigPath(),
	}
}

// ConfigPath returns the file this config was loaded from or will be saved to.
func (c *Config) ConfigPath() string {
	if c.path == "" {
		return DefaultConfigPath()
	}
	return c.path
}

// DebounceDelay returns the auto-translate quiescence window.
func (c *Config) DebounceDelay() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// LoadConfig reads the default config file, returning defaults when it is missing.
func LoadConfig() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Load reads a YAML config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.path = path
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// Parse unmarshals YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills fields an explicit empty value in the file cleared.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.DefaultSource == "" {
		c.DefaultSource = defaults.DefaultSource
	}
	if c.DefaultTarget == "" {
		c.DefaultTarget = defaults.DefaultTarget
	}
	if c.DebounceMS == 0 {
		c.DebounceMS = defaults.DebounceMS
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.Path == "" {
		c.Storage.Path = defaults.Storage.Path
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaults.Server.Port
	}
}

// Validate checks that all required fields are present and consistent.
func (c *Config) Validate() error {
	var errs []string
	if len(c.Endpoints) == 0 {
		errs = append(errs, "at least one endpoint is required")
	}
	for i, e := range c.Endpoints {
		u, err := url.Parse(e)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("endpoints[%d] %q is not an absolute http(s) URL", i, e))
		}
	}
	if !text.IsValidSourceLanguage(c.DefaultSource) {
		errs = append(errs, fmt.Sprintf("default_source %q is not a supported language", c.DefaultSource))
	}
	if !text.IsValidTargetLanguage(c.DefaultTarget) {
		errs = append(errs, fmt.Sprintf("default_target %q is not a supported target language", c.DefaultTarget))
	}
	if c.DebounceMS < 0 {
		errs = append(errs, "debounce_ms must be positive")
	}
	switch c.Storage.Backend {
	case appconfig.StorageSQLite, appconfig.StoragePreferences, appconfig.StorageMemory:
	default:
		errs = append(errs, fmt.Sprintf("storage.backend %q must be sqlite, preferences or memory", c.Storage.Backend))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Save writes the config to ConfigPath.
func (c *Config) Save() error {
	return c.SaveTo(c.ConfigPath())
}

// SaveTo writes the config as YAML to path.
func (c *Config) SaveTo(path string) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	c.path = path
	return nil
}
