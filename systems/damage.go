package systems

import (
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ContactSource says what a player touched.
type ContactSource int

const (
	SourceEnemy ContactSource = iota
	SourceBoss
	SourceHazard
)

func (s ContactSource) String() string {
	switch s {
	case SourceBoss:
		return "Boss"
	case SourceHazard:
		return "Hazard"
	}
	return "Enemy"
}

// ContactEvent is one player overlap, sampled when it was detected.
type ContactEvent struct {
	Player          *donburi.Entry
	Other           *donburi.Entry
	Source          ContactSource
	PlayerBounds    Rect
	OtherBounds     Rect
	PlayerVelocityY float64 // y-down: positive is falling
}

// NewContactEvent samples bounds and velocity through the physics facade.
func NewContactEvent(player, other *donburi.Entry, source ContactSource) ContactEvent {
	return ContactEvent{
		Player:          player,
		Other:           other,
		Source:          source,
		PlayerBounds:    Physics.Bounds(player),
		OtherBounds:     Physics.Bounds(other),
		PlayerVelocityY: Physics.VelocityY(player),
	}
}

// ContactOutcome is what ResolveContact did.
type ContactOutcome int

const (
	OutcomeNone ContactOutcome = iota
	OutcomeIgnored
	OutcomeJumpKill
	OutcomeInvincibleKill
	OutcomeProjectileKill
	OutcomeBossHit
	OutcomeDowngrade
	OutcomeDeath
)

func (o ContactOutcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeJumpKill:
		return "JumpKill"
	case OutcomeInvincibleKill:
		return "InvincibleKill"
	case OutcomeProjectileKill:
		return "ProjectileKill"
	case OutcomeBossHit:
		return "BossHit"
	case OutcomeDowngrade:
		return "Downgrade"
	case OutcomeDeath:
		return "Death"
	}
	return "None"
}

// IsStomp reports whether the contact geometry is a landing from above:
// the player's feet are at least StompMargin above the other's vertical
// center and the player is falling.
func IsStomp(ev ContactEvent) bool {
	return ev.PlayerBounds.Bottom() <= ev.OtherBounds.CenterY()-cfg.Combat.StompMargin &&
		ev.PlayerVelocityY > 0
}

// IsJumpKill classifies an enemy contact. An invincible player always wins.
func IsJumpKill(ev ContactEvent, invincible bool) bool {
	return invincible || IsStomp(ev)
}

// ResolveContact applies the outcome of a player touching an enemy, boss
// or hazard. Contacts that can no longer matter resolve to OutcomeNone.
func ResolveContact(e *ecs.ECS, ev ContactEvent) ContactOutcome {
	p := playerData(ev.Player)
	if p == nil || !p.Alive || !IsGameplayActive(e) {
		return OutcomeNone
	}
	if ev.Other == nil || !ev.Other.Valid() {
		return OutcomeNone
	}

	switch ev.Source {
	case SourceEnemy:
		return resolveEnemyContact(e, ev, p.Invincible)
	case SourceBoss:
		return resolveBossContact(e, ev, p.Invincible)
	case SourceHazard:
		if p.Invincible {
			return OutcomeIgnored
		}
		return sideHit(e, ev.Player)
	}
	return OutcomeNone
}

func resolveEnemyContact(e *ecs.ECS, ev ContactEvent, invincible bool) ContactOutcome {
	if !IsJumpKill(ev, invincible) {
		return sideHit(e, ev.Player)
	}
	defeatEnemy(e, ev.Other)
	if IsStomp(ev) {
		rebound(ev.Player)
		return OutcomeJumpKill
	}
	return OutcomeInvincibleKill
}

// resolveBossContact hurts a boss only through a stomp. An invincible side
// contact leaves both the boss and the player untouched.
func resolveBossContact(e *ecs.ECS, ev ContactEvent, invincible bool) ContactOutcome {
	boss := components.Boss.Get(ev.Other)
	if boss.Phase == cfg.BossDefeated {
		return OutcomeNone
	}
	if IsStomp(ev) {
		rebound(ev.Player)
		ApplyBossDamage(e, ev.Other, cfg.Boss.DamagePerHit)
		return OutcomeBossHit
	}
	if invincible {
		return OutcomeIgnored
	}
	return sideHit(e, ev.Player)
}

// sideHit downgrades the player, or kills them at Normal tier.
func sideHit(e *ecs.ECS, player *donburi.Entry) ContactOutcome {
	if ReceiveDamage(e, player) {
		HandlePlayerDeath(e, player)
		return OutcomeDeath
	}
	return OutcomeDowngrade
}

func rebound(player *donburi.Entry) {
	vx := 0.0
	if player.HasComponent(components.Physics) {
		vx = components.Physics.Get(player).SpeedX
	}
	Physics.SetVelocity(player, vx, cfg.Combat.StompRebound)
}

// defeatEnemy removes a common enemy and pays its reward.
func defeatEnemy(e *ecs.ECS, enemy *donburi.Entry) {
	if enemy == nil || !enemy.Valid() {
		return
	}
	reward := cfg.Score.Enemy
	if enemy.HasComponent(components.Enemy) {
		reward = components.Enemy.Get(enemy).Reward
	}
	destroyEntity(e, enemy)

	session := GetOrCreateSession(e)
	session.Stats.EnemiesDefeated++
	AddScore(e, reward)
}

// ResolveProjectileHit applies a fireball to an enemy or boss. The
// projectile is consumed either way.
func ResolveProjectileHit(e *ecs.ECS, projectile, target *donburi.Entry) ContactOutcome {
	if projectile == nil || !projectile.Valid() || target == nil || !target.Valid() {
		return OutcomeNone
	}
	if !IsGameplayActive(e) {
		return OutcomeNone
	}

	switch {
	case target.HasComponent(components.Boss):
		if components.Boss.Get(target).Phase == cfg.BossDefeated {
			return OutcomeNone
		}
		destroyEntity(e, projectile)
		ApplyBossDamage(e, target, cfg.Boss.DamagePerHit)
		return OutcomeBossHit
	case target.HasComponent(components.Enemy):
		destroyEntity(e, projectile)
		defeatEnemy(e, target)
		return OutcomeProjectileKill
	}
	return OutcomeNone
}
