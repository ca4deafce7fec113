package archetypes

import (
	"github.com/automoto/gfxpanel/components"
	cfg "github.com/automoto/gfxpanel/config"
	"github.com/automoto/gfxpanel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Light = newArchetype(
		tags.Light,
		components.Light,
	)
	Panel = newArchetype(
		tags.Panel,
		components.GraphicsPanel,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
