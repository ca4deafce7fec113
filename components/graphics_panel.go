package components

import (
	"github.com/automoto/gfxpanel/graphics"
	"github.com/automoto/gfxpanel/platform"
	"github.com/yohamta/donburi"
)

// GraphicsPanelData stores the settings panel controller and the platform
// it drives
type GraphicsPanelData struct {
	Controller *graphics.Controller
	Platform   *platform.Ebiten
	Quality    graphics.Dropdown // for hotkey cycling

	LastError error // most recent handler error, shown by the status HUD
}

// GraphicsPanel is the component type for the settings panel singleton
var GraphicsPanel = donburi.NewComponentType[GraphicsPanelData]()
