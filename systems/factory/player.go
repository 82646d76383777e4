package factory

import (
	"github.com/automoto/stompers/archetypes"
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns player id (1 or 2) at tier with a body sized for it.
func CreatePlayer(ecs *ecs.ECS, id int, name string, x, y float64, tier cfg.PowerTier) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := cfg.Power.Bodies[tier]
	obj := newBox(player, x, y, body.Width, body.Height, tags.ResolvPlayer)
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		ID:        id,
		Name:      name,
		Tier:      tier,
		Alive:     true,
		Direction: components.Vector{X: 1, Y: 0},
	})
	components.Physics.SetValue(player, components.PhysicsData{
		BodyOffsetX: body.OffsetX,
		BodyOffsetY: body.OffsetY,
	})

	return player
}
