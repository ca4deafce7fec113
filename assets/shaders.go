package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// LightShader shades a radial falloff per pixel
	LightShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	lightSrc, err := shaderFS.ReadFile("shaders/light.kage")
	if err != nil {
		return err
	}
	LightShader, err = ebiten.NewShader(lightSrc)
	if err != nil {
		return err
	}

	return nil
}
