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

// CollectMushroom promotes a Normal player to Super. Higher tiers are unchanged.
func CollectMushroom(e *ecs.ECS, player *donburi.Entry) {
	p := playerData(player)
	if p == nil || !p.Alive || p.Tier != cfg.TierNormal {
		return
	}
	setTier(e, player, cfg.TierSuper)
	PersistSession(e)
}

// CollectFireFlower promotes the player to Fire, passing through Super
// when starting from Normal.
func CollectFireFlower(e *ecs.ECS, player *donburi.Entry) {
	p := playerData(player)
	if p == nil || !p.Alive || p.Tier == cfg.TierFire {
		return
	}
	if p.Tier == cfg.TierNormal {
		setTier(e, player, cfg.TierSuper)
	}
	setTier(e, player, cfg.TierFire)
	PersistSession(e)
}

// CollectStar makes the player invincible for the star duration. A second
// star restarts the window from now.
func CollectStar(e *ecs.ECS, player *donburi.Entry) {
	p := playerData(player)
	if p == nil || !p.Alive {
		return
	}
	grantInvincibility(e, player, cfg.Power.StarDuration, true)
}

// ReceiveDamage drops the player exactly one tier and grants a short grace
// window. It returns true when the player was already Normal; the caller
// owns the death that follows.
func ReceiveDamage(e *ecs.ECS, player *donburi.Entry) (lethal bool) {
	p := playerData(player)
	if p == nil || !p.Alive {
		return false
	}

	switch p.Tier {
	case cfg.TierFire:
		setTier(e, player, cfg.TierSuper)
	case cfg.TierSuper:
		setTier(e, player, cfg.TierNormal)
	default:
		return true
	}

	grantInvincibility(e, player, cfg.Power.DamageGraceDuration, false)
	TriggerFlash(player, cfg.Combat.DamageFlashSeconds)
	PersistSession(e)
	return false
}

// IsInvincible reports whether contacts currently leave the player unharmed.
func IsInvincible(player *donburi.Entry) bool {
	p := playerData(player)
	return p != nil && p.Invincible
}

// InvincibleRemaining returns how long the current window still runs.
func InvincibleRemaining(e *ecs.ECS, player *donburi.Entry) time.Duration {
	p := playerData(player)
	if p == nil || !p.Invincible {
		return 0
	}
	left := p.InvincibleTimer.Due() - Now(e)
	if left < 0 {
		return 0
	}
	return left
}

// CanThrowFireball reports whether the player may fire projectiles.
func CanThrowFireball(player *donburi.Entry) bool {
	p := playerData(player)
	return p != nil && p.Alive && p.Tier == cfg.TierFire
}

// ThrowFireball launches a fireball in direction (-1 left, 1 right, 0 facing).
// Returns nil when the player cannot throw.
func ThrowFireball(e *ecs.ECS, player *donburi.Entry, direction float64) *donburi.Entry {
	if !CanThrowFireball(player) || !IsGameplayActive(e) {
		return nil
	}

	p := components.Player.Get(player)
	if direction == 0 {
		direction = p.Direction.X
	}
	if direction < 0 {
		direction = -1
	} else {
		direction = 1
	}
	p.Direction.X = direction

	fb := factory.CreateFireball(e, player, direction)
	components.Projectile.Get(fb).Lifetime = GetOrCreateTimers(e).After(
		cfg.Combat.FireballLifetime, timer.ScopeLevel, func() {
			destroyEntity(e, fb)
		})
	return fb
}

// setTier changes tier, resizes the collision body and notifies.
func setTier(e *ecs.ECS, player *donburi.Entry, tier cfg.PowerTier) {
	p := components.Player.Get(player)
	from := p.Tier
	if from == tier {
		return
	}
	p.Tier = tier
	applyBodySize(player, tier)

	messages.TierChanged.Publish(e.World, messages.TierChangedEvent{
		PlayerID: p.ID,
		From:     from,
		To:       tier,
	})
}

func applyBodySize(player *donburi.Entry, tier cfg.PowerTier) {
	body := cfg.Power.Bodies[tier]
	Physics.SetBodySize(player, body.Width, body.Height, body.OffsetX, body.OffsetY)
}

// grantInvincibility replaces any running window with one lasting d from now.
func grantInvincibility(e *ecs.ECS, player *donburi.Entry, d time.Duration, star bool) {
	p := components.Player.Get(player)
	sched := GetOrCreateTimers(e)

	p.InvincibleTimer.Cancel()
	p.Invincible = true
	p.InvincibleTimer = sched.After(d, timer.ScopeRun, func() {
		expireInvincibility(e, player)
	})

	messages.Invincibility.Publish(e.World, messages.InvincibilityEvent{
		PlayerID: p.ID,
		Active:   true,
		Star:     star,
	})
}

func expireInvincibility(e *ecs.ECS, player *donburi.Entry) {
	p := playerData(player)
	if p == nil {
		return
	}
	p.InvincibleTimer = nil
	clearInvincibility(e, player)
}

// clearInvincibility ends the window immediately and cancels its expiry.
func clearInvincibility(e *ecs.ECS, player *donburi.Entry) {
	p := playerData(player)
	if p == nil {
		return
	}
	p.InvincibleTimer.Cancel()
	p.InvincibleTimer = nil
	if !p.Invincible {
		return
	}
	p.Invincible = false

	messages.Invincibility.Publish(e.World, messages.InvincibilityEvent{
		PlayerID: p.ID,
		Active:   false,
	})
}
