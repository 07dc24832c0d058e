package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"folio/internal/eventbus"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "FOLIO_"

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	Content  string         `toml:"content" env:"CONTENT"`   // content file, empty for built-in
	LogFile  string         `toml:"log_file" env:"LOG_FILE"` // empty disables logging
	Carousel CarouselConfig `toml:"carousel" envPrefix:"CAROUSEL_"`
	Reveal   RevealConfig   `toml:"reveal" envPrefix:"REVEAL_"`
	UI       UISettings     `toml:"ui" envPrefix:"UI_"`
}

// CarouselConfig controls the document carousels
type CarouselConfig struct {
	IntervalMS      int  `toml:"interval_ms" env:"INTERVAL_MS"`
	ResetOnNavigate bool `toml:"reset_on_navigate" env:"RESET_ON_NAVIGATE"`
}

// Interval returns the auto-advance period
func (c CarouselConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// RevealConfig controls when sections fade in
type RevealConfig struct {
	Threshold    float64 `toml:"threshold" env:"THRESHOLD"`
	BottomMargin int     `toml:"bottom_margin" env:"BOTTOM_MARGIN"` // in lines
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse     bool `toml:"mouse" env:"MOUSE"`
	AltScreen bool `toml:"alt_screen" env:"ALT_SCREEN"`
	MaxWidth  int  `toml:"max_width" env:"MAX_WIDTH"`
}

// Validate rejects values the page cannot run with
func (c *Config) Validate() error {
	if c.Carousel.IntervalMS <= 0 {
		return fmt.Errorf("carousel.interval_ms must be positive, got %d", c.Carousel.IntervalMS)
	}
	if c.Reveal.Threshold <= 0 || c.Reveal.Threshold > 1 {
		return fmt.Errorf("reveal.threshold must be in (0, 1], got %g", c.Reveal.Threshold)
	}
	if c.Reveal.BottomMargin < 0 {
		return fmt.Errorf("reveal.bottom_margin must not be negative, got %d", c.Reveal.BottomMargin)
	}
	if c.UI.MaxWidth < 0 {
		return fmt.Errorf("ui.max_width must not be negative, got %d", c.UI.MaxWidth)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "folio", "config.toml")
}

// NewConfigService creates a config service for the given file. An empty
// path selects DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, falling back to defaults when it does
// not exist, then applies environment overrides
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
		if err := ApplyEnv(cfg); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, fmt.Errorf("unknown config keys in %s:\n%s", path, serr.String())
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from FOLIO_* environment variables
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv loads variables from .env files into the process environment.
// Missing files are skipped and variables already set are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		LogFile: "folio.log",
		Carousel: CarouselConfig{
			IntervalMS: 5000,
		},
		Reveal: RevealConfig{
			Threshold:    0.1,
			BottomMargin: 2,
		},
		UI: UISettings{
			Mouse:     true,
			AltScreen: true,
			MaxWidth:  100,
		},
	}
}
