package systems

import (
	"fmt"

	cfg "github.com/automoto/gfxpanel/config"
	"github.com/automoto/gfxpanel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

const statusHint = "R: Reset   Enter: Apply   Q/E: Quality"

// statusLines returns the HUD text for the live settings.
func statusLines(e *ecs.ECS) []string {
	panel, ok := GetGraphicsPanel(e)
	if !ok {
		return nil
	}
	s := panel.Controller.Current()
	lines := []string{
		fmt.Sprintf("Quality: %s", panel.Platform.QualityName()),
		fmt.Sprintf("Mode: %s", s.Mode),
		fmt.Sprintf("Pixel lights: %d/%d", min(s.PixelLightCount, cfg.Preview.LightCount), cfg.Preview.LightCount),
	}
	if panel.LastError != nil {
		lines = append(lines, "Error: "+panel.LastError.Error())
	}
	return lines
}

// DrawStatus renders the live settings in the top-left corner and the
// shortcut hint along the bottom.
func DrawStatus(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.GoSmall.Get()
	for i, line := range statusLines(e) {
		y := cfg.Preview.StatusY + i*cfg.Preview.StatusLineStep
		text.Draw(screen, line, face, cfg.Preview.StatusX, y, cfg.Panel.TextColor)
	}

	height := screen.Bounds().Dy()
	text.Draw(screen, statusHint, face, cfg.Preview.StatusX, height-6, cfg.Panel.HintColor)
}
