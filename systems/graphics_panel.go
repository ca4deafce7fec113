package systems

import (
	"github.com/automoto/gfxpanel/archetypes"
	"github.com/automoto/gfxpanel/components"
	"github.com/automoto/gfxpanel/graphics"
	"github.com/automoto/gfxpanel/platform"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// panelAction is a keyboard shortcut for the settings panel
type panelAction int

const (
	panelNone panelAction = iota
	panelReset
	panelApply
	panelPrevQuality
	panelNextQuality
)

// InitGraphicsPanel stores the panel singleton. The controller must already
// be initialized.
func InitGraphicsPanel(e *ecs.ECS, ctl *graphics.Controller, p *platform.Ebiten, quality graphics.Dropdown) *components.GraphicsPanelData {
	if entry, ok := components.GraphicsPanel.First(e.World); ok {
		e.World.Remove(entry.Entity())
	}
	ent := archetypes.Panel.Spawn(e)
	components.GraphicsPanel.SetValue(ent, components.GraphicsPanelData{
		Controller: ctl,
		Platform:   p,
		Quality:    quality,
	})
	return components.GraphicsPanel.Get(ent)
}

// GetGraphicsPanel returns the panel singleton if one was stored.
func GetGraphicsPanel(e *ecs.ECS) (*components.GraphicsPanelData, bool) {
	entry, ok := components.GraphicsPanel.First(e.World)
	if !ok {
		return nil, false
	}
	return components.GraphicsPanel.Get(entry), true
}

// UpdateGraphicsPanel handles the panel's keyboard shortcuts.
func UpdateGraphicsPanel(e *ecs.ECS) {
	panel, ok := GetGraphicsPanel(e)
	if !ok {
		return
	}
	runPanelAction(panel, pollPanelAction())
}

// pollPanelAction reads this frame's shortcut, if any
func pollPanelAction() panelAction {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return panelReset
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return panelApply
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return panelPrevQuality
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		return panelNextQuality
	}
	return panelNone
}

func runPanelAction(panel *components.GraphicsPanelData, action panelAction) {
	var err error
	switch action {
	case panelNone:
		return
	case panelReset:
		err = panel.Controller.Reset()
	case panelApply:
		err = panel.Controller.Apply()
	case panelPrevQuality:
		cycleQuality(panel, -1)
	case panelNextQuality:
		cycleQuality(panel, +1)
	}
	RecordPanelError(panel, err)
}

// cycleQuality steps the quality dropdown through the notifying setter so
// the change flows through the same path as a click.
func cycleQuality(panel *components.GraphicsPanelData, direction int) {
	n := len(panel.Platform.QualityNames())
	if n == 0 || panel.Quality == nil {
		return
	}
	panel.Quality.SetValue((panel.Quality.Value() + direction + n) % n)
}

// RecordPanelError logs err and keeps it for the status HUD. A nil err
// clears the previous one.
func RecordPanelError(panel *components.GraphicsPanelData, err error) {
	panel.LastError = err
	if err != nil {
		log.Error().Err(err).Msg("Graphics panel action failed")
	}
}
