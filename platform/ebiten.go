// Package platform implements graphics.Platform on top of Ebitengine.
package platform

import (
	"github.com/automoto/gfxpanel/config"
	"github.com/automoto/gfxpanel/graphics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Display is the window/monitor surface the platform drives.
type Display interface {
	IsFullscreen() bool
	SetFullscreen(fullscreen bool)
	WindowSize() (int, int)
	SetWindowSize(width, height int)
	MonitorSize() (int, int)
	TPS() int
	SetTPS(tps int)
}

// EbitenDisplay forwards to the ebiten window API.
type EbitenDisplay struct{}

func (EbitenDisplay) IsFullscreen() bool { return ebiten.IsFullscreen() }
func (EbitenDisplay) SetFullscreen(fullscreen bool) { ebiten.SetFullscreen(fullscreen) }
func (EbitenDisplay) WindowSize() (int, int) { return ebiten.WindowSize() }
func (EbitenDisplay) SetWindowSize(width, height int) { ebiten.SetWindowSize(width, height) }
func (EbitenDisplay) TPS() int { return ebiten.TPS() }
func (EbitenDisplay) SetTPS(tps int) { ebiten.SetTPS(tps) }

func (EbitenDisplay) MonitorSize() (int, int) {
	if m := ebiten.Monitor(); m != nil {
		return m.Size()
	}
	return ebiten.WindowSize()
}

// Ebiten is the process-wide quality and display state. Quality presets come
// from config.Quality and switching preset redefines the pixel light count.
// Not safe for concurrent use.
type Ebiten struct {
	display Display
	log     zerolog.Logger

	presets         []config.QualityPreset
	modes           []graphics.DisplayMode
	defaultRefresh  int
	quality         int
	pixelLightCount int
	requested       *graphics.DisplayMode
}

// NewEbiten creates the platform at config.Quality.DefaultLevel.
func NewEbiten(display Display, log zerolog.Logger) *Ebiten {
	p := &Ebiten{
		display:        display,
		log:            log,
		presets:        config.Quality.Presets,
		modes:          config.Display.Modes,
		defaultRefresh: config.Display.DefaultRefreshRate,
	}
	p.SetQualityLevel(config.Quality.DefaultLevel)
	return p
}

func (p *Ebiten) QualityLevel() int {
	return p.quality
}

func (p *Ebiten) SetQualityLevel(level int) {
	p.quality = level
	p.pixelLightCount = p.presets[level].PixelLightCount
	p.log.Debug().
		Int("level", level).
		Str("name", p.presets[level].Name).
		Int("pixelLights", p.pixelLightCount).
		Msg("Quality level set")
}

func (p *Ebiten) QualityNames() []string {
	names := make([]string, len(p.presets))
	for i, q := range p.presets {
		names[i] = q.Name
	}
	return names
}

// QualityName returns the current preset's name.
func (p *Ebiten) QualityName() string {
	return p.presets[p.quality].Name
}

func (p *Ebiten) PixelLightCount() int {
	return p.pixelLightCount
}

func (p *Ebiten) SetPixelLightCount(count int) {
	if count < 0 {
		count = 0
	}
	p.pixelLightCount = count
	p.log.Debug().Int("pixelLights", count).Msg("Pixel light count set")
}

func (p *Ebiten) DisplayModes() []graphics.DisplayMode {
	return p.modes
}

// CurrentDisplayMode reports the last requested mode. Before any request it
// reports the monitor size when fullscreen and the window size otherwise,
// with the update rate as refresh rate.
func (p *Ebiten) CurrentDisplayMode() graphics.DisplayMode {
	if p.requested != nil {
		return *p.requested
	}
	var w, h int
	if p.display.IsFullscreen() {
		w, h = p.display.MonitorSize()
	} else {
		w, h = p.display.WindowSize()
	}
	hz := p.display.TPS()
	if hz <= 0 {
		// ebiten.SyncWithFPS
		hz = p.defaultRefresh
	}
	return graphics.DisplayMode{Width: w, Height: h, RefreshRate: hz}
}

func (p *Ebiten) RequestDisplayMode(mode graphics.DisplayMode, fullscreen bool) {
	p.display.SetWindowSize(mode.Width, mode.Height)
	if mode.RefreshRate > 0 {
		p.display.SetTPS(mode.RefreshRate)
	}
	p.display.SetFullscreen(fullscreen)
	p.requested = &mode
	p.log.Info().Stringer("mode", mode).Bool("fullscreen", fullscreen).Msg("Display mode applied")
}
