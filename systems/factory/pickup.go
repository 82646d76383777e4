package factory

import (
	"github.com/automoto/stompers/archetypes"
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const pickupSize = 16

func CreatePickup(ecs *ecs.ECS, spawn cfg.PickupSpawn) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)

	obj := newBox(pickup, spawn.X, spawn.Y, pickupSize, pickupSize, tags.ResolvPickup)
	addToSpace(ecs, obj)

	components.Pickup.SetValue(pickup, components.PickupData{Kind: spawn.Kind})

	return pickup
}
