package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LightData is one dynamic light in the preview scene
type LightData struct {
	Priority int // the PixelLightCount lowest priorities are shaded per pixel
	X, Y     float64
	Radius   float64
	Color    color.RGBA

	Pulse *gween.Sequence // radius offset over time
	Glow  float64         // current pulse offset
}

var Light = donburi.NewComponentType[LightData]()
