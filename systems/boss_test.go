package systems

import (
	"testing"
	"time"

	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/messages"
	"github.com/automoto/stompers/systems/factory"
	"github.com/automoto/stompers/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestBossHealthThreshold(t *testing.T) {
	for _, health := range []int{1, 3, 5} {
		e, _ := newSession(t, cfg.SinglePlayer)
		boss := factory.CreateBoss(e, cfg.BossSpawn{Name: "Test", X: 400, Y: 512, Health: health})

		for i := 0; i < health-1; i++ {
			ApplyBossDamage(e, boss, 1)
		}
		assert.Equal(t, cfg.BossActive, components.Boss.Get(boss).Phase, "health %d", health)

		ApplyBossDamage(e, boss, 1)
		assert.Equal(t, cfg.BossDefeated, components.Boss.Get(boss).Phase, "health %d", health)
	}
}

func TestBossDefeatRewards(t *testing.T) {
	e, _ := newSession(t, cfg.SinglePlayer)
	LoadLevel(e, 4)

	boss, ok := ActiveBoss(e)
	require.True(t, ok)
	exit, ok := components.Exit.First(e.World)
	require.True(t, ok)
	require.True(t, components.Exit.Get(exit).Locked)

	before := sessionOf(e).Score
	b := components.Boss.Get(boss)
	require.Equal(t, 3, b.MaxHealth)

	for i := 0; i < b.MaxHealth; i++ {
		ApplyBossDamage(e, boss, 1)
	}

	assert.Equal(t, cfg.BossDefeated, b.Phase)
	assert.Equal(t, before+cfg.Score.BossDefeat, sessionOf(e).Score)
	assert.Equal(t, 1, sessionOf(e).Stats.EnemiesDefeated)
	assert.Equal(t, 1, sessionOf(e).Stats.BossesDefeated)
	assert.False(t, components.Exit.Get(exit).Locked)

	p1 := mustPlayer(t, e, 1)
	standBeside(p1, boss)
	assert.Empty(t, overlapping(p1, 0, tags.ResolvBoss), "defeated boss leaves the collision space")
}

func TestThreeJumpKillsDefeatBoss(t *testing.T) {
	e, _ := newSession(t, cfg.SinglePlayer)
	LoadLevel(e, 4)
	p1 := mustPlayer(t, e, 1)
	boss, _ := ActiveBoss(e)
	before := sessionOf(e).Score

	for i := 0; i < 3; i++ {
		standAbove(p1, boss, 2)
		Physics.SetVelocity(p1, 0, 4)
		require.Equal(t, OutcomeBossHit, ResolveContact(e, NewContactEvent(p1, boss, SourceBoss)), "hit %d", i+1)
		assert.Equal(t, cfg.Combat.StompRebound, components.Physics.Get(p1).SpeedY)
	}

	assert.Equal(t, cfg.BossDefeated, components.Boss.Get(boss).Phase)
	assert.Equal(t, before+cfg.Score.BossDefeat, sessionOf(e).Score)
	assert.Equal(t, 1, sessionOf(e).Stats.EnemiesDefeated)
	exit, _ := components.Exit.First(e.World)
	assert.False(t, components.Exit.Get(exit).Locked)

	standAbove(p1, boss, 2)
	Physics.SetVelocity(p1, 0, 4)
	assert.Equal(t, OutcomeNone, ResolveContact(e, NewContactEvent(p1, boss, SourceBoss)),
		"a defeated boss never engages again")
}

func TestDefeatedBossIgnoresDamage(t *testing.T) {
	e, _ := newSession(t, cfg.SinglePlayer)
	boss := factory.CreateBoss(e, cfg.BossSpawn{Name: "Test", X: 400, Y: 512, Health: 1})
	UpdateNotifications(e)

	defeats := 0
	messages.BossDefeated.Subscribe(e.World, func(w donburi.World, ev messages.BossDefeatedEvent) {
		defeats++
	})

	ApplyBossDamage(e, boss, 1)
	score := sessionOf(e).Score
	ApplyBossDamage(e, boss, 1)
	ApplyBossDamage(e, boss, 5)
	UpdateNotifications(e)

	assert.Equal(t, 0, components.Boss.Get(boss).Health)
	assert.Equal(t, score, sessionOf(e).Score)
	assert.Equal(t, 1, sessionOf(e).Stats.BossesDefeated)
	assert.Equal(t, 1, defeats)
}

func TestBossHealthRatio(t *testing.T) {
	e, _ := newSession(t, cfg.SinglePlayer)
	LoadLevel(e, 2)
	boss, ok := ActiveBoss(e)
	require.True(t, ok)

	assert.Equal(t, 1.0, BossHealthRatio(boss))
	ApplyBossDamage(e, boss, 1)
	assert.InDelta(t, 0.8, BossHealthRatio(boss), 1e-9)
	assert.Equal(t, 5, components.Boss.Get(boss).MaxHealth)
}

func TestBossFlashDoesNotBlockDamage(t *testing.T) {
	e, _ := newSession(t, cfg.SinglePlayer)
	boss := factory.CreateBoss(e, cfg.BossSpawn{Name: "Test", X: 400, Y: 512, Health: 3})

	ApplyBossDamage(e, boss, 1)
	require.NotNil(t, components.Flash.Get(boss).Tween)
	ApplyBossDamage(e, boss, 1)

	assert.Equal(t, 1, components.Boss.Get(boss).Health)
}

func TestBossBreathesFireUntilDefeated(t *testing.T) {
	e, _ := newSession(t, cfg.SinglePlayer)
	LoadLevel(e, 4)
	boss, _ := ActiveBoss(e)
	attack := components.Boss.Get(boss).AttackTimer
	require.True(t, attack.Active())

	every := (&cfg.BossSpawn{AttackInterval: 1.5}).AttackEvery()
	advance(e, every)
	assert.Equal(t, 1, countOf(e, components.Hazard))

	advance(e, cfg.Boss.BreathLifetime)
	assert.LessOrEqual(t, countOf(e, components.Hazard), 1, "old breath expires")

	for components.Boss.Get(boss).Phase != cfg.BossDefeated {
		ApplyBossDamage(e, boss, 1)
	}
	assert.Equal(t, 0, countOf(e, components.Hazard))
	assert.False(t, attack.Active())

	advance(e, 10*time.Second)
	assert.Equal(t, 0, countOf(e, components.Hazard))
}

func TestBossBreathAimsAtPlayer(t *testing.T) {
	e, _ := newSession(t, cfg.SinglePlayer)
	p1 := mustPlayer(t, e, 1)
	boss := factory.CreateBoss(e, cfg.BossSpawn{Name: "Test", X: 400, Y: 512, Health: 3})
	StartBossAttacks(e, boss, time.Second)

	Physics.SetPosition(p1, 700, 544)
	advance(e, time.Second)

	hazard, ok := components.Hazard.First(e.World)
	require.True(t, ok)
	hb := Physics.Bounds(hazard)
	assert.Equal(t, Physics.Bounds(boss).Right(), hb.X)
	assert.Equal(t, Physics.Bounds(boss).Bottom(), hb.Bottom())
}
