package config

import (
	"image/color"

	"github.com/automoto/gfxpanel/graphics"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by the settings scene.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// QualityPreset is one named bundle of rendering fidelity settings
type QualityPreset struct {
	Name            string `yaml:"name"`
	PixelLightCount int    `yaml:"pixelLightCount"`
}

// QualityConfig contains the quality level registry
type QualityConfig struct {
	Presets      []QualityPreset
	DefaultLevel int
}

// DisplayConfig contains the display modes offered in the resolution dropdown
type DisplayConfig struct {
	Modes              []graphics.DisplayMode
	DefaultRefreshRate int // used when the window TPS is uncapped
	StartFullscreen    bool
}

// PanelConfig contains settings panel layout and colors
type PanelConfig struct {
	BackgroundColor color.RGBA
	RowColor        color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	Title           string
	LightLabel      string // fmt format with one %d
	MinPixelLights  float64
	MaxPixelLights  float64
	PixelLightStep  float64
	BarSegments     int
	ButtonWidth     int
	ButtonHeight    int
}

// PreviewConfig contains the light preview drawn behind the panel
type PreviewConfig struct {
	LightCount     int
	BaseRadius     float64
	PulseRadius    float64
	PulseSeconds   float32
	LightColors    []color.RGBA
	AmbientColor   color.RGBA
	MarginX        float64
	CenterY        float64
	StatusX        int
	StatusY        int
	StatusLineStep int
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	JSON   bool   `yaml:"json"`
	Colors bool   `yaml:"colors"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ConfigPath string // optional YAML override file
}

// Global configuration instances
var C *Config
var Quality QualityConfig
var Display DisplayConfig
var Panel PanelConfig
var Preview PreviewConfig
var Log LogConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	DarkPanel    = color.RGBA{R: 20, G: 20, B: 30, A: 230}
	PanelRow     = color.RGBA{R: 40, G: 40, B: 50, A: 255}
	NightSky     = color.RGBA{R: 10, G: 10, B: 18, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Graphics Settings",
	}

	// Mirrors the stock engine preset ladder
	Quality = QualityConfig{
		Presets: []QualityPreset{
			{Name: "Very Low", PixelLightCount: 0},
			{Name: "Low", PixelLightCount: 0},
			{Name: "Medium", PixelLightCount: 1},
			{Name: "High", PixelLightCount: 2},
			{Name: "Very High", PixelLightCount: 3},
			{Name: "Ultra", PixelLightCount: 4},
		},
		DefaultLevel: 3,
	}

	Display = DisplayConfig{
		Modes: []graphics.DisplayMode{
			{Width: 640, Height: 360, RefreshRate: 60},
			{Width: 1280, Height: 720, RefreshRate: 60},
			{Width: 1600, Height: 900, RefreshRate: 60},
			{Width: 1920, Height: 1080, RefreshRate: 60},
			{Width: 2560, Height: 1440, RefreshRate: 60},
		},
		DefaultRefreshRate: 60,
		StartFullscreen:    false,
	}

	Panel = PanelConfig{
		BackgroundColor: DarkPanel,
		RowColor:        PanelRow,
		TitleColor:      White,
		TextColor:       Gray,
		HintColor:       BrightOrange,
		Title:           "GRAPHICS",
		LightLabel:      graphics.DefaultLabelFormat,
		MinPixelLights:  0,
		MaxPixelLights:  8,
		PixelLightStep:  1,
		BarSegments:     8,
		ButtonWidth:     150,
		ButtonHeight:    20,
	}

	Preview = PreviewConfig{
		LightCount:   8,
		BaseRadius:   18,
		PulseRadius:  6,
		PulseSeconds: 1.5,
		LightColors: []color.RGBA{
			BrightYellow, LightBlue, LightRed, LightGreen, Magenta, BrightOrange,
		},
		AmbientColor:   NightSky,
		MarginX:        40,
		CenterY:        330,
		StatusX:        8,
		StatusY:        16,
		StatusLineStep: 14,
	}

	Log = LogConfig{
		Level:  "info",
		JSON:   false,
		Colors: true,
	}

	Debug = DebugConfig{}
}
