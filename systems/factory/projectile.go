package factory

import (
	"github.com/automoto/stompers/archetypes"
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFireball spawns a fireball at the owner's hand, moving in direction (-1 or 1).
func CreateFireball(ecs *ecs.ECS, owner *donburi.Entry, direction float64) *donburi.Entry {
	fb := archetypes.Projectile.Spawn(ecs)

	ownerObj := components.Object.Get(owner).Object
	startX := ownerObj.X + ownerObj.W/2 - cfg.Combat.FireballWidth/2
	if direction < 0 {
		startX -= ownerObj.W
	} else {
		startX += ownerObj.W
	}
	startY := ownerObj.Y + ownerObj.H/2 - cfg.Combat.FireballHeight/2

	obj := newBox(fb, startX, startY, cfg.Combat.FireballWidth, cfg.Combat.FireballHeight, tags.ResolvProjectile)
	addToSpace(ecs, obj)

	components.Projectile.SetValue(fb, components.ProjectileData{
		OwnerID: components.Player.Get(owner).ID,
	})
	components.Physics.SetValue(fb, components.PhysicsData{
		SpeedX: cfg.Combat.FireballSpeed * direction,
	})

	return fb
}
