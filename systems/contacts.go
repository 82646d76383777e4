package systems

import (
	"github.com/automoto/stompers/components"
	"github.com/automoto/stompers/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts turns this frame's overlaps into gameplay outcomes:
// pickups first, then enemies, bosses and hazards, then the exit.
// A player's box is swept by its vertical speed, so a landing is seen
// while the feet are still above the target. Projectile hits are resolved
// after every player.
func UpdateContacts(ecs *ecs.ECS) {
	for _, player := range players(ecs) {
		resolvePlayerContacts(ecs, player)
	}
	resolveProjectileContacts(ecs)
}

func resolvePlayerContacts(ecs *ecs.ECS, player *donburi.Entry) {
	if !playerCanTouch(ecs, player) {
		return
	}
	sweep := Physics.VelocityY(player)

	for _, pickup := range overlapping(player, sweep, tags.ResolvPickup) {
		if !playerCanTouch(ecs, player) {
			return
		}
		CollectPickup(ecs, player, pickup)
	}

	for _, enemy := range overlapping(player, sweep, tags.ResolvEnemy) {
		if !playerCanTouch(ecs, player) {
			return
		}
		ResolveContact(ecs, NewContactEvent(player, enemy, SourceEnemy))
	}

	for _, boss := range overlapping(player, sweep, tags.ResolvBoss) {
		if !playerCanTouch(ecs, player) {
			return
		}
		ResolveContact(ecs, NewContactEvent(player, boss, SourceBoss))
	}

	for _, hazard := range overlapping(player, sweep, tags.ResolvHazard) {
		if !playerCanTouch(ecs, player) {
			return
		}
		ResolveContact(ecs, NewContactEvent(player, hazard, SourceHazard))
	}

	for _, exit := range overlapping(player, sweep, tags.ResolvExit) {
		if !playerCanTouch(ecs, player) {
			return
		}
		data := components.Exit.Get(exit)
		if data.Locked {
			continue
		}
		data.Reached = true
		ReachExit(ecs)
	}
}

func resolveProjectileContacts(ecs *ecs.ECS) {
	var projectiles []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		projectiles = append(projectiles, e)
	})

	for _, fb := range projectiles {
		if !IsGameplayActive(ecs) {
			return
		}
		if !fb.Valid() {
			continue
		}
		for _, target := range overlapping(fb, 0, tags.ResolvEnemy, tags.ResolvBoss) {
			if ResolveProjectileHit(ecs, fb, target) != OutcomeNone {
				break
			}
		}
	}
}

func playerCanTouch(ecs *ecs.ECS, player *donburi.Entry) bool {
	p := playerData(player)
	return p != nil && p.Alive && IsGameplayActive(ecs)
}

// overlapping returns the live entries tagged with any of resolvTags whose
// boxes overlap e's box moved down by dy. Space cells only narrow the search.
func overlapping(e *donburi.Entry, dy float64, resolvTags ...string) []*donburi.Entry {
	if e == nil || !e.Valid() || !e.HasComponent(components.Object) {
		return nil
	}
	obj := components.Object.Get(e).Object
	if obj == nil || obj.Space == nil {
		return nil
	}

	check := obj.Check(0, dy, resolvTags...)
	if check == nil {
		return nil
	}

	bounds := Physics.Bounds(e)
	bounds.Y += dy
	seen := make(map[*resolv.Object]bool)
	var out []*donburi.Entry
	for _, other := range check.ObjectsByTags(resolvTags...) {
		if seen[other] {
			continue
		}
		seen[other] = true

		entry, ok := other.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		if !bounds.Overlaps(Physics.Bounds(entry)) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// UpdateProjectiles moves fireballs along their fixed horizontal speed.
func UpdateProjectiles(ecs *ecs.ECS) {
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		obj.X += components.Physics.Get(e).SpeedX
	})
}
