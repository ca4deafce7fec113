package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/gfxpanel/archetypes"
	"github.com/automoto/gfxpanel/assets"
	"github.com/automoto/gfxpanel/components"
	cfg "github.com/automoto/gfxpanel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// lightStep is the seconds advanced per update at tps. Uncapped TPS falls
// back to the configured default refresh rate.
func lightStep(tps int) float32 {
	if tps <= 0 {
		tps = cfg.Display.DefaultRefreshRate
	}
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1 / float32(tps)
}

// Reused between frames to avoid allocations
var lightBuf []*components.LightData

// SpawnLights creates the preview lights spread evenly across the screen.
func SpawnLights(e *ecs.ECS) {
	n := cfg.Preview.LightCount
	if n <= 0 {
		return
	}
	span := float64(cfg.C.Width) - 2*cfg.Preview.MarginX
	for i := 0; i < n; i++ {
		x := cfg.Preview.MarginX
		if n > 1 {
			x += span * float64(i) / float64(n-1)
		}
		ent := archetypes.Light.Spawn(e)
		components.Light.SetValue(ent, components.LightData{
			Priority: i,
			X:        x,
			Y:        cfg.Preview.CenterY,
			Radius:   cfg.Preview.BaseRadius,
			Color:    cfg.Preview.LightColors[i%len(cfg.Preview.LightColors)],
			Pulse:    newPulse(i),
		})
	}
}

// newPulse builds a grow/shrink sequence; the phase offset keeps lights
// from pulsing in lockstep.
func newPulse(i int) *gween.Sequence {
	d := cfg.Preview.PulseSeconds
	amp := float32(cfg.Preview.PulseRadius)
	seq := gween.NewSequence(
		gween.New(0, amp, d, ease.InOutSine),
		gween.New(amp, 0, d, ease.InOutSine),
	)
	seq.Update(float32(i%4) * d / 2)
	return seq
}

// UpdateLights advances every light's pulse, restarting finished sequences.
func UpdateLights(e *ecs.ECS) {
	dt := lightStep(ebiten.TPS())
	components.Light.Each(e.World, func(entry *donburi.Entry) {
		light := components.Light.Get(entry)
		if light.Pulse == nil {
			return
		}
		glow, _, done := light.Pulse.Update(dt)
		light.Glow = float64(glow)
		if done {
			light.Pulse.Reset()
		}
	})
}

// LightBudget is the number of lights allowed per-pixel shading this frame.
func LightBudget(e *ecs.ECS) int {
	panel, ok := GetGraphicsPanel(e)
	if !ok {
		return 0
	}
	return panel.Platform.PixelLightCount()
}

// splitLights orders lights by priority and splits them into the first
// budget per-pixel lights and the remaining flat ones.
func splitLights(world donburi.World, budget int) (pixel, flat []*components.LightData) {
	lightBuf = lightBuf[:0]
	components.Light.Each(world, func(entry *donburi.Entry) {
		lightBuf = append(lightBuf, components.Light.Get(entry))
	})
	sort.Slice(lightBuf, func(i, j int) bool {
		return lightBuf[i].Priority < lightBuf[j].Priority
	})
	budget = max(0, min(budget, len(lightBuf)))
	return lightBuf[:budget], lightBuf[budget:]
}

// DrawLights shades the lights that fit the pixel light budget and draws the rest as flat discs.
func DrawLights(e *ecs.ECS, screen *ebiten.Image) {
	pixel, flat := splitLights(e.World, LightBudget(e))
	for _, light := range pixel {
		drawPixelLight(screen, light)
	}
	for _, light := range flat {
		dim := light.Color
		dim.R, dim.G, dim.B = dim.R/3, dim.G/3, dim.B/3
		vector.DrawFilledCircle(screen, float32(light.X), float32(light.Y), float32(light.Radius/2), dim, false)
	}
}

func drawPixelLight(screen *ebiten.Image, light *components.LightData) {
	r := light.Radius + light.Glow
	if assets.LightShader == nil {
		vector.DrawFilledCircle(screen, float32(light.X), float32(light.Y), float32(r), light.Color, true)
		return
	}

	// Shade a square covering the falloff
	reach := r * 2
	size := int(reach * 2)
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(light.X-reach, light.Y-reach)
	op.Uniforms = map[string]any{
		"Center": []float32{float32(light.X), float32(light.Y)},
		"Radius": float32(reach),
		"Color":  premultiplied(light.Color),
	}
	op.Blend = ebiten.BlendLighter
	screen.DrawRectShader(size, size, assets.LightShader, op)
}

func premultiplied(c color.RGBA) []float32 {
	r, g, b, a := c.RGBA()
	return []float32{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff}
}
