package factory

import (
	"github.com/automoto/stompers/archetypes"
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoss spawns an active boss with the level's health budget.
func CreateBoss(ecs *ecs.ECS, spawn cfg.BossSpawn) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)

	obj := newBox(boss, spawn.X, spawn.Y, cfg.Boss.Width, cfg.Boss.Height, tags.ResolvBoss)
	addToSpace(ecs, obj)

	health := spawn.Health
	if health <= 0 {
		health = 1
	}
	components.Boss.SetValue(boss, components.BossData{
		Name:      spawn.Name,
		Health:    health,
		MaxHealth: health,
		Phase:     cfg.BossActive,
	})
	return boss
}
