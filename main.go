package main

import (
	"flag"

	"github.com/automoto/gfxpanel/config"
	"github.com/automoto/gfxpanel/fonts"
	"github.com/automoto/gfxpanel/platform"
	"github.com/automoto/gfxpanel/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(p *platform.Ebiten) *Game {
	return &Game{
		scene: scenes.NewSettingsScene(p),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.ConfigPath, "config", "", "Path to an optional YAML override file")
	flag.StringVar(&config.Debug.ConfigPath, "c", "", "Path to an optional YAML override file (shorthand)")
	flag.Parse()

	if err := config.Load(config.Debug.ConfigPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	config.SetupLogging()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load fonts")
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(config.Display.StartFullscreen)

	p := platform.NewEbiten(platform.EbitenDisplay{}, log.Logger.With().Str("component", "platform").Logger())
	log.Info().
		Str("quality", p.QualityName()).
		Int("modes", len(p.DisplayModes())).
		Msg("Starting graphics settings")

	if err := ebiten.RunGame(NewGame(p)); err != nil {
		log.Fatal().Err(err).Msg("Game loop exited")
	}
}
