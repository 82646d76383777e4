package factory

import (
	"github.com/automoto/stompers/archetypes"
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a common stompable enemy.
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := newBox(enemy, x, y, cfg.Combat.EnemyWidth, cfg.Combat.EnemyHeight, tags.ResolvEnemy)
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName: "Walker",
		Reward:   cfg.Score.Enemy,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{SpeedX: -1})

	return enemy
}
