package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vrr-project/vrr-go/pkg/display"
	"github.com/vrr-project/vrr-go/pkg/director"
)

// Config errors.
var (
	ErrNoDisplays         = errors.New("no displays configured")
	ErrDuplicateDisplayID = errors.New("duplicate display id")
)

// Config is the root of a display configuration file.
type Config struct {
	// Displays lists the managed displays.
	Displays []DisplayConfig `yaml:"displays"`
}

// DisplayConfig describes one managed display.
type DisplayConfig struct {
	// ID identifies the display.
	ID int32 `yaml:"id"`

	// DefaultMode is the ID of the display's designated default mode.
	DefaultMode int32 `yaml:"default_mode"`

	// Modes is the display's supported mode table.
	Modes []ModeConfig `yaml:"modes"`
}

// ModeConfig describes one supported mode.
type ModeConfig struct {
	ID          int32   `yaml:"id"`
	Width       int32   `yaml:"width"`
	Height      int32   `yaml:"height"`
	RefreshRate float32 `yaml:"refresh_rate"`
}

// Load reads and parses a display configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses display configuration data in YAML format.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}

	if len(cfg.Displays) == 0 {
		return nil, ErrNoDisplays
	}

	seen := make(map[int32]struct{}, len(cfg.Displays))
	for _, dc := range cfg.Displays {
		if _, dup := seen[dc.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateDisplayID, dc.ID)
		}
		seen[dc.ID] = struct{}{}

		// Validate each display's catalog eagerly so config errors
		// surface at load time, not at first arbitration.
		if _, err := dc.Catalog(); err != nil {
			return nil, fmt.Errorf("display %d: %w", dc.ID, err)
		}
	}

	return &cfg, nil
}

// Catalog builds the display's mode catalog.
func (dc DisplayConfig) Catalog() (*display.Catalog, error) {
	modes := make([]display.Mode, 0, len(dc.Modes))
	for _, mc := range dc.Modes {
		modes = append(modes, display.Mode{
			ID:          mc.ID,
			Width:       mc.Width,
			Height:      mc.Height,
			RefreshRate: mc.RefreshRate,
		})
	}
	return display.NewCatalog(modes, dc.DefaultMode)
}

// ApplyTo installs every configured display's catalog into the director.
func (c *Config) ApplyTo(d *director.Director) error {
	for _, dc := range c.Displays {
		catalog, err := dc.Catalog()
		if err != nil {
			return fmt.Errorf("display %d: %w", dc.ID, err)
		}
		d.SetCatalog(display.ID(dc.ID), catalog)
	}
	return nil
}
