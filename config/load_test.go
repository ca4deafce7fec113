package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// restore puts the package globals back after a test mutates them.
func restore(t *testing.T) {
	q, d, p, l := Quality, Display, Panel, Log
	t.Cleanup(func() {
		Quality, Display, Panel, Log = q, d, p, l
	})
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gfx.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	restore(t)
	before := len(Quality.Presets)

	if err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if len(Quality.Presets) != before {
		t.Errorf("presets = %d, want %d", len(Quality.Presets), before)
	}
	if err := Load(""); err != nil {
		t.Errorf("Load(\"\") = %v", err)
	}
}

func TestLoad_ReplacesPresetsAndModes(t *testing.T) {
	restore(t)
	path := writeFile(t, `
quality:
  presets:
    - name: Fast
      pixelLightCount: 1
    - name: Pretty
      pixelLightCount: 6
  defaultLevel: 1
display:
  modes:
    - {width: 800, height: 600, refreshRate: 60}
    - {width: 1920, height: 1080, refreshRate: 144}
  startFullscreen: true
log:
  level: debug
  json: true
`)
	if err := Load(path); err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if len(Quality.Presets) != 2 || Quality.Presets[1].Name != "Pretty" || Quality.Presets[1].PixelLightCount != 6 {
		t.Errorf("presets = %+v", Quality.Presets)
	}
	if Quality.DefaultLevel != 1 {
		t.Errorf("DefaultLevel = %d, want 1", Quality.DefaultLevel)
	}
	if len(Display.Modes) != 2 || Display.Modes[1].RefreshRate != 144 {
		t.Errorf("modes = %+v", Display.Modes)
	}
	if !Display.StartFullscreen {
		t.Error("StartFullscreen = false, want true")
	}
	if Log.Level != "debug" || !Log.JSON {
		t.Errorf("log = %+v", Log)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty presets", "quality:\n  presets: []\n", ErrNoPresets},
		{"default out of range", "quality:\n  defaultLevel: 42\n", ErrDefaultLevel},
		{"zero width", "display:\n  modes:\n    - {width: 0, height: 600, refreshRate: 60}\n", ErrInvalidMode},
		{"zero refresh", "display:\n  modes:\n    - {width: 800, height: 600, refreshRate: 0}\n", ErrRefreshRate},
		{"inverted lights", "panel:\n  maxPixelLights: -1\n", ErrLightBoundary},
		{"preset above max", "quality:\n  defaultLevel: 0\n  presets:\n    - {name: Ultra, pixelLightCount: 12}\n", ErrPresetLights},
		{"negative preset", "quality:\n  defaultLevel: 0\n  presets:\n    - {name: Broken, pixelLightCount: -3}\n", ErrPresetLights},
		{"max below default presets", "panel:\n  maxPixelLights: 2\n", ErrPresetLights},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)
			before := Quality
			err := Load(writeFile(t, tt.content))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Load() = %v, want %v", err, tt.want)
			}
			if len(Quality.Presets) != len(before.Presets) || Quality.DefaultLevel != before.DefaultLevel {
				t.Error("globals changed after a rejected override")
			}
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	restore(t)
	if err := Load(writeFile(t, "quality: [unclosed")); err == nil {
		t.Error("Load() = nil, want parse error")
	}
}

func TestSetupLogging(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	setupLogging(&buf, LogConfig{Level: "warn", JSON: true})
	log.Info().Msg("hidden")
	log.Warn().Str("panel", "graphics").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line logged at warn level: %s", out)
	}
	if !strings.Contains(out, `"panel":"graphics"`) {
		t.Errorf("json field missing: %s", out)
	}

	setupLogging(&buf, LogConfig{Level: "bogus"})
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("level = %v, want info", zerolog.GlobalLevel())
	}
}
