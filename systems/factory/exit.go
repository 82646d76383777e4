package factory

import (
	"github.com/automoto/stompers/archetypes"
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateExit creates the level goal. A locked exit ignores players until unlocked.
func CreateExit(ecs *ecs.ECS, area cfg.Rect, locked bool) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)

	obj := newBox(exit, area.X, area.Y, area.W, area.H, tags.ResolvExit)
	addToSpace(ecs, obj)

	components.Exit.SetValue(exit, components.ExitData{
		Locked: locked,
	})

	return exit
}
