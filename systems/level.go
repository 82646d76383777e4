package systems

import (
	"github.com/automoto/stompers/archetypes"
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/systems/factory"
	"github.com/automoto/stompers/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateLevel returns the singleton loaded level, creating it if needed
func GetOrCreateLevel(e *ecs.ECS) *components.LevelData {
	if _, ok := components.Level.First(e.World); !ok {
		ent := archetypes.Level.Spawn(e)
		components.Level.SetValue(ent, components.LevelData{})
	}

	ent, _ := components.Level.First(e.World)
	return components.Level.Get(ent)
}

// LoadLevel replaces the current level's entities with level n from the
// level table and moves living players to its spawn. Level-scoped timers
// are cancelled; run-scoped ones (invincibility, revivals) keep running.
// An unknown level number loads an empty level without a boss.
func LoadLevel(e *ecs.ECS, n int) {
	lvl, ok := cfg.Levels.Level(n)
	if !ok {
		lvl = cfg.LevelConfig{Number: n}
	}

	GetOrCreateTimers(e).Cancel(timer.ScopeLevel)
	clearLevelEntities(e)

	for _, pos := range lvl.Enemies {
		factory.CreateEnemy(e, pos.X, pos.Y)
	}
	for _, spawn := range lvl.Pickups {
		factory.CreatePickup(e, spawn)
	}
	if lvl.HasBoss() {
		boss := factory.CreateBoss(e, *lvl.Boss)
		StartBossAttacks(e, boss, lvl.Boss.AttackEvery())
	}
	if lvl.Exit.W > 0 && lvl.Exit.H > 0 {
		factory.CreateExit(e, lvl.Exit, lvl.HasBoss())
	}

	placePlayers(e, lvl.Spawn)

	level := GetOrCreateLevel(e)
	level.Config = lvl
}

// placePlayers stands living players on the spawn floor, player 2 beside player 1.
func placePlayers(e *ecs.ECS, spawn cfg.Point) {
	floor := spawn.Y + cfg.Power.Bodies[cfg.TierNormal].Height
	for _, player := range players(e) {
		p := components.Player.Get(player)
		if !p.Alive {
			continue
		}
		x := spawn.X
		if p.ID == 2 {
			x += cfg.Revival.OffsetX
		}
		Physics.SetPosition(player, x, floor-Physics.Bounds(player).H)
		Physics.SetVelocity(player, 0, 0)
	}
}

func clearLevelEntities(e *ecs.ECS) {
	var doomed []*donburi.Entry
	collect := func(entry *donburi.Entry) { doomed = append(doomed, entry) }

	components.Enemy.Each(e.World, collect)
	components.Boss.Each(e.World, collect)
	components.Exit.Each(e.World, collect)
	components.Pickup.Each(e.World, collect)
	components.Hazard.Each(e.World, collect)
	components.Projectile.Each(e.World, collect)

	for _, entry := range doomed {
		destroyEntity(e, entry)
	}
}

// UnlockExit opens the level exit.
func UnlockExit(e *ecs.ECS) {
	components.Exit.Each(e.World, func(entry *donburi.Entry) {
		components.Exit.Get(entry).Locked = false
	})
}

// ActiveBoss returns the current level's boss entry, defeated or not.
func ActiveBoss(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Boss.First(e.World)
}
