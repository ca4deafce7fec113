package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/gfxpanel/graphics"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoPresets     = errors.New("config: quality presets must not be empty")
	ErrDefaultLevel  = errors.New("config: default quality level out of range")
	ErrInvalidMode   = errors.New("config: display mode dimensions must be positive")
	ErrRefreshRate   = errors.New("config: refresh rate must be positive")
	ErrLightBoundary = errors.New("config: pixel light bounds inverted")
	ErrPresetLights  = errors.New("config: preset pixel light count outside panel bounds")
)

// Override is the optional YAML file layered over the built-in defaults.
// Only fields present in the file replace defaults.
type Override struct {
	Quality *struct {
		Presets      []QualityPreset `yaml:"presets"`
		DefaultLevel *int            `yaml:"defaultLevel"`
	} `yaml:"quality"`
	Display *struct {
		Modes           []graphics.DisplayMode `yaml:"modes"`
		StartFullscreen *bool                  `yaml:"startFullscreen"`
	} `yaml:"display"`
	Panel *struct {
		LightLabel     string   `yaml:"lightLabel"`
		MaxPixelLights *float64 `yaml:"maxPixelLights"`
	} `yaml:"panel"`
	Log *LogConfig `yaml:"log"`
}

// Load reads the override file at path and applies it to the globals.
// A missing file keeps the defaults.
func Load(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var o Override
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return o.Apply()
}

// Apply validates o against the current globals and replaces them.
func (o *Override) Apply() error {
	quality := Quality
	display := Display
	panel := Panel
	logCfg := Log

	if o.Quality != nil {
		if o.Quality.Presets != nil {
			quality.Presets = o.Quality.Presets
		}
		if o.Quality.DefaultLevel != nil {
			quality.DefaultLevel = *o.Quality.DefaultLevel
		}
	}
	if o.Display != nil {
		if o.Display.Modes != nil {
			display.Modes = o.Display.Modes
		}
		if o.Display.StartFullscreen != nil {
			display.StartFullscreen = *o.Display.StartFullscreen
		}
	}
	if o.Panel != nil {
		if o.Panel.LightLabel != "" {
			panel.LightLabel = o.Panel.LightLabel
		}
		if o.Panel.MaxPixelLights != nil {
			panel.MaxPixelLights = *o.Panel.MaxPixelLights
		}
	}
	if o.Log != nil {
		logCfg = *o.Log
		if logCfg.Level == "" {
			logCfg.Level = Log.Level
		}
	}

	if err := validate(quality, display, panel); err != nil {
		return err
	}

	Quality = quality
	Display = display
	Panel = panel
	Log = logCfg
	return nil
}

func validate(q QualityConfig, d DisplayConfig, p PanelConfig) error {
	if len(q.Presets) == 0 {
		return ErrNoPresets
	}
	if q.DefaultLevel < 0 || q.DefaultLevel >= len(q.Presets) {
		return fmt.Errorf("%w: %d of %d", ErrDefaultLevel, q.DefaultLevel, len(q.Presets))
	}
	for _, m := range d.Modes {
		if m.Width <= 0 || m.Height <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidMode, m)
		}
		if m.RefreshRate <= 0 {
			return fmt.Errorf("%w: %s", ErrRefreshRate, m)
		}
	}
	if p.MaxPixelLights < p.MinPixelLights {
		return ErrLightBoundary
	}
	for _, preset := range q.Presets {
		n := float64(preset.PixelLightCount)
		if n < p.MinPixelLights || n > p.MaxPixelLights {
			return fmt.Errorf("%w: %s has %d, bounds [%g, %g]",
				ErrPresetLights, preset.Name, preset.PixelLightCount, p.MinPixelLights, p.MaxPixelLights)
		}
	}
	return nil
}
