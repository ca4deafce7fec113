package scenes

import (
	"sync"

	"github.com/automoto/gfxpanel/assets"
	"github.com/automoto/gfxpanel/components"
	cfg "github.com/automoto/gfxpanel/config"
	"github.com/automoto/gfxpanel/graphics"
	"github.com/automoto/gfxpanel/platform"
	"github.com/automoto/gfxpanel/systems"
	"github.com/automoto/gfxpanel/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SettingsScene displays the graphics settings panel over a light preview
type SettingsScene struct {
	ecs      *ecs.ECS
	panelUI  *ui.GraphicsPanelUI
	panel    *components.GraphicsPanelData
	platform *platform.Ebiten
	options  []graphics.Option
	once     sync.Once
}

// NewSettingsScene creates the scene. The controller is built on the first
// Update, once the window exists.
func NewSettingsScene(p *platform.Ebiten, opts ...graphics.Option) *SettingsScene {
	return &SettingsScene{platform: p, options: opts}
}

func (ss *SettingsScene) Update() {
	ss.once.Do(ss.configure)

	ss.ecs.Update()
	ss.panelUI.Update()
}

func (ss *SettingsScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Preview.AmbientColor)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
	ss.panelUI.UI.Draw(screen)
}

func (ss *SettingsScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	var ctl *graphics.Controller
	report := func(err error) {
		if ss.panel != nil {
			systems.RecordPanelError(ss.panel, err)
		}
	}

	panelUI, err := ui.NewGraphicsPanelUI(ui.PanelHandlers{
		OnQualityLevelChanged:    func(i int) { report(ctl.OnQualityLevelChanged(i)) },
		OnResolutionChanged:      func(i int) { report(ctl.OnResolutionChanged(i)) },
		OnPixelLightCountChanged: func(v float64) { report(ctl.OnPixelLightCountChanged(v)) },
		OnApply:                  func() { report(ctl.Apply()) },
		OnReset:                  func() { report(ctl.Reset()) },
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build graphics panel")
	}
	ss.panelUI = panelUI

	opts := append([]graphics.Option{
		graphics.WithLogger(log.Logger.With().Str("component", "graphics").Logger()),
		graphics.WithLabelFormat(cfg.Panel.LightLabel),
	}, ss.options...)
	ctl = graphics.NewController(ss.platform, panelUI.Widgets(), opts...)
	if err := ctl.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize graphics panel")
	}
	ss.panel = systems.InitGraphicsPanel(ss.ecs, ctl, ss.platform, panelUI.Quality)

	if err := assets.LoadShaders(); err != nil {
		log.Warn().Err(err).Msg("Light shader unavailable, drawing flat lights")
	}
	systems.SpawnLights(ss.ecs)

	ss.ecs.AddSystem(systems.UpdateGraphicsPanel)
	ss.ecs.AddSystem(systems.UpdateLights)

	// Renderers (status draws on top of lights)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawLights)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawStatus)
}
