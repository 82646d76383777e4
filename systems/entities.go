package systems

import (
	"github.com/automoto/stompers/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// destroyEntity cancels an entity's pending timers, drops it from the
// collision space and removes it from the world. Invalid entries are ignored.
func destroyEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}

	if e.HasComponent(components.Projectile) {
		components.Projectile.Get(e).Lifetime.Cancel()
	}
	if e.HasComponent(components.Hazard) {
		components.Hazard.Get(e).Lifetime.Cancel()
	}
	if e.HasComponent(components.Boss) {
		components.Boss.Get(e).AttackTimer.Cancel()
	}
	if e.HasComponent(components.Player) {
		components.Player.Get(e).InvincibleTimer.Cancel()
	}

	removeFromSpace(e)
	ecs.World.Remove(e.Entity())
}

// removeFromSpace unregisters e's collision object so it no longer reports overlaps.
func removeFromSpace(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}

// findPlayer returns the player entry with the given id.
func findPlayer(ecs *ecs.ECS, id int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if found == nil && components.Player.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}

// players returns every player entry ordered by id.
func players(ecs *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	for id := 1; id <= 2; id++ {
		if p, ok := findPlayer(ecs, id); ok {
			out = append(out, p)
		}
	}
	return out
}

func playerData(e *donburi.Entry) *components.PlayerData {
	if e == nil || !e.Valid() || !e.HasComponent(components.Player) {
		return nil
	}
	return components.Player.Get(e)
}
