package systems

import (
	"time"

	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/messages"
	"github.com/automoto/stompers/systems/factory"
	"github.com/automoto/stompers/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyBossDamage removes amount health from an active boss. Reaching zero
// defeats it for good. Hits on a defeated boss are ignored.
func ApplyBossDamage(e *ecs.ECS, boss *donburi.Entry, amount int) {
	if boss == nil || !boss.Valid() || !boss.HasComponent(components.Boss) || amount <= 0 {
		return
	}
	b := components.Boss.Get(boss)
	if b.Phase == cfg.BossDefeated {
		return
	}

	b.Health -= amount
	if b.Health < 0 {
		b.Health = 0
	}
	TriggerFlash(boss, cfg.Boss.HitFlashSeconds)

	messages.BossDamaged.Publish(e.World, messages.BossDamagedEvent{
		Health:    b.Health,
		MaxHealth: b.MaxHealth,
	})

	if b.Health == 0 {
		defeatBoss(e, boss)
	}
}

func defeatBoss(e *ecs.ECS, boss *donburi.Entry) {
	b := components.Boss.Get(boss)
	b.Phase = cfg.BossDefeated
	b.AttackTimer.Cancel()
	b.AttackTimer = nil

	// A defeated boss stays in the world for the HUD but never collides again.
	removeFromSpace(boss)
	clearHazards(e)

	session := GetOrCreateSession(e)
	session.Stats.EnemiesDefeated++
	session.Stats.BossesDefeated++
	AddScore(e, cfg.Score.BossDefeat)

	UnlockExit(e)

	messages.BossDefeated.Publish(e.World, messages.BossDefeatedEvent{
		Name:  b.Name,
		Level: session.CurrentLevel,
	})
}

// BossHealthRatio is Health/MaxHealth for a health bar.
func BossHealthRatio(boss *donburi.Entry) float64 {
	if boss == nil || !boss.Valid() || !boss.HasComponent(components.Boss) {
		return 0
	}
	b := components.Boss.Get(boss)
	if b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}

// StartBossAttacks breathes fire every interval while the boss is active.
func StartBossAttacks(e *ecs.ECS, boss *donburi.Entry, interval time.Duration) {
	if boss == nil || !boss.Valid() || !boss.HasComponent(components.Boss) {
		return
	}
	b := components.Boss.Get(boss)
	b.AttackTimer.Cancel()
	if b.Phase == cfg.BossDefeated {
		b.AttackTimer = nil
		return
	}
	b.AttackTimer = GetOrCreateTimers(e).Every(interval, timer.ScopeLevel, func() {
		breatheFire(e, boss)
	})
}

// breatheFire spawns a short-lived hazard on the side of the nearest living player.
func breatheFire(e *ecs.ECS, boss *donburi.Entry) {
	if boss == nil || !boss.Valid() || !IsGameplayActive(e) {
		return
	}
	b := components.Boss.Get(boss)
	if b.Phase == cfg.BossDefeated {
		return
	}

	bounds := Physics.Bounds(boss)
	facing := -1.0
	if target := nearestLivingPlayer(e, bounds.CenterX()); target != nil {
		if Physics.Bounds(target).CenterX() > bounds.CenterX() {
			facing = 1
		}
	}

	x := bounds.X - cfg.Boss.BreathWidth
	if facing > 0 {
		x = bounds.Right()
	}
	y := bounds.Bottom() - cfg.Boss.BreathHeight

	hazard := factory.CreateHazard(e, b.Name, x, y, cfg.Boss.BreathWidth, cfg.Boss.BreathHeight)
	components.Hazard.Get(hazard).Lifetime = GetOrCreateTimers(e).After(
		cfg.Boss.BreathLifetime, timer.ScopeLevel, func() {
			destroyEntity(e, hazard)
		})
}

func nearestLivingPlayer(e *ecs.ECS, x float64) *donburi.Entry {
	var best *donburi.Entry
	bestDist := 0.0
	for _, p := range players(e) {
		if !components.Player.Get(p).Alive {
			continue
		}
		d := Physics.Bounds(p).CenterX() - x
		if d < 0 {
			d = -d
		}
		if best == nil || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func clearHazards(e *ecs.ECS) {
	var hazards []*donburi.Entry
	components.Hazard.Each(e.World, func(entry *donburi.Entry) {
		hazards = append(hazards, entry)
	})
	for _, h := range hazards {
		destroyEntity(e, h)
	}
}
