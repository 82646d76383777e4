package archetypes

import (
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Physics,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Object,
		components.Flash,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Exit,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Session = newArchetype(
		components.Session,
	)
	Revival = newArchetype(
		components.Revival,
	)
	Timers = newArchetype(
		components.Timers,
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
