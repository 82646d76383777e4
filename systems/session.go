package systems

import (
	"github.com/automoto/stompers/archetypes"
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/messages"
	"github.com/automoto/stompers/systems/factory"
	"github.com/automoto/stompers/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SessionOptions configures a new session.
type SessionOptions struct {
	Mode        cfg.GameMode
	PlayerNames [2]string
	Continue    bool // Resume from the store instead of starting a fresh run
}

var defaultPlayerNames = [2]string{"Player 1", "Player 2"}

// GetOrCreateSession returns the singleton session, creating it if needed
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	if _, ok := components.Session.First(e.World); !ok {
		ent := archetypes.Session.Spawn(e)
		components.Session.SetValue(ent, components.SessionData{
			CurrentLevel: 1,
			TotalLevels:  cfg.Levels.Count(),
			Mode:         cfg.SinglePlayer,
			State:        cfg.SessionPlaying,
			PlayerNames:  defaultPlayerNames,
		})
	}

	ent, _ := components.Session.First(e.World)
	return components.Session.Get(ent)
}

// StartSession builds the collision space, players and first level.
// With Continue set, score, stats, level, mode and tiers come from the store.
func StartSession(e *ecs.ECS, opts SessionOptions) {
	if _, ok := components.Space.First(e.World); !ok {
		factory.CreateSpace(e, cfg.C.SpaceWidth, cfg.C.SpaceHeight, cfg.C.CellSize, cfg.C.CellSize)
	}
	GetOrCreateTimers(e)
	GetOrCreateRevival(e)

	session := GetOrCreateSession(e)
	for i, name := range opts.PlayerNames {
		if name != "" {
			session.PlayerNames[i] = name
		}
	}

	ctx := DefaultSessionContext()
	ctx.Mode = opts.Mode
	if opts.Continue {
		if stored, ok := LoadSessionContext(); ok {
			ctx = stored
		}
	}
	if ctx.CurrentLevel > session.TotalLevels {
		ctx.CurrentLevel = session.TotalLevels
	}

	session.Mode = ctx.Mode
	session.Score = ctx.Score
	session.Stats = ctx.Stats
	session.CurrentLevel = ctx.CurrentLevel
	session.State = cfg.SessionPlaying
	session.InputFrozen = false

	playerCount := 1
	if session.Mode == cfg.CoOp {
		playerCount = 2
	}
	for id := 1; id <= playerCount; id++ {
		if _, exists := findPlayer(e, id); exists {
			continue
		}
		snap := ctx.Players[id-1]
		player := factory.CreatePlayer(e, id, session.PlayerNames[id-1], 0, 0, snap.Tier())
		if !snap.Alive {
			components.Player.Get(player).Alive = false
		}
	}
	// A run resumed with nobody alive starts everyone over at their stored tier.
	if !anyPlayerAlive(e) {
		for _, p := range players(e) {
			components.Player.Get(p).Alive = true
		}
	}
	// A co-op player stored dead gets a fresh countdown next to the survivor.
	if session.Mode == cfg.CoOp {
		rv := GetOrCreateRevival(e)
		for _, player := range players(e) {
			p := components.Player.Get(player)
			if _, running := rv.Tickets[p.ID]; !p.Alive && !running {
				startRevival(e, rv, p.ID)
			}
		}
	}

	LoadLevel(e, session.CurrentLevel)
	PersistSession(e)
}

// IsGameplayActive reports whether contacts and pickups are being accepted.
func IsGameplayActive(e *ecs.ECS) bool {
	session := GetOrCreateSession(e)
	return !session.State.Terminal() && !session.InputFrozen && !session.Paused
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateSession(e).Paused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution unless gameplay is active.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsGameplayActive(e) {
			return
		}
		system(e)
	}
}

// SetPaused pauses or resumes the session clock and contacts.
func SetPaused(e *ecs.ECS, paused bool) {
	GetOrCreateSession(e).Paused = paused
}

// AddScore adds a positive amount to the score. Anything else is ignored.
func AddScore(e *ecs.ECS, amount int) {
	if amount <= 0 {
		return
	}
	session := GetOrCreateSession(e)
	session.Score += amount
	publishScore(e, session.Score, amount)
	PersistSession(e)
}

func publishScore(e *ecs.ECS, score, delta int) {
	messages.ScoreChanged.Publish(e.World, messages.ScoreChangedEvent{
		Score: score,
		Delta: delta,
	})
}

// CollectCoin counts a coin and pays for it.
func CollectCoin(e *ecs.ECS) {
	if !IsGameplayActive(e) {
		return
	}
	GetOrCreateSession(e).Stats.CoinsCollected++
	AddScore(e, cfg.Score.Coin)
}

// CollectPickup consumes a pickup entity for player.
func CollectPickup(e *ecs.ECS, player, pickup *donburi.Entry) {
	if pickup == nil || !pickup.Valid() || !pickup.HasComponent(components.Pickup) {
		return
	}
	p := playerData(player)
	if p == nil || !p.Alive || !IsGameplayActive(e) {
		return
	}
	kind := components.Pickup.Get(pickup).Kind
	destroyEntity(e, pickup)
	CollectItem(e, player, kind)
}

// CollectItem applies a collected item of the given kind to player.
func CollectItem(e *ecs.ECS, player *donburi.Entry, kind cfg.PickupKind) {
	p := playerData(player)
	if p == nil || !p.Alive || !IsGameplayActive(e) {
		return
	}

	switch kind {
	case cfg.PickupCoin:
		CollectCoin(e)
		return
	case cfg.PickupMushroom:
		CollectMushroom(e, player)
	case cfg.PickupFireFlower:
		CollectFireFlower(e, player)
	case cfg.PickupStar:
		CollectStar(e, player)
	default:
		return
	}

	GetOrCreateSession(e).Stats.PowerUpsCollected++
	AddScore(e, cfg.Score.PowerUp)
}

// ReachExit completes the current level once. Later calls are ignored until
// the next level is playing. After the final level the run is complete.
func ReachExit(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	if session.State.Terminal() {
		return
	}

	session.State = cfg.SessionLevelComplete
	session.InputFrozen = true
	session.Stats.LevelsCompleted++
	AddScore(e, cfg.Score.LevelComplete)

	final := session.CurrentLevel >= session.TotalLevels
	messages.LevelComplete.Publish(e.World, messages.LevelCompleteEvent{
		Level: session.CurrentLevel,
		Score: session.Score,
		Final: final,
	})

	if final {
		completeRun(e)
		return
	}

	session.TransitionTimer = GetOrCreateTimers(e).After(
		cfg.Score.LevelTransitionDelay, timer.ScopeLevel, func() {
			AdvanceLevel(e)
		})
}

// AdvanceLevel starts the next level after a completed one. Score, stats
// and player tiers carry over from the live session; the store only
// mirrors them.
func AdvanceLevel(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	if session.State != cfg.SessionLevelComplete || session.CurrentLevel >= session.TotalLevels {
		return
	}
	session.TransitionTimer.Cancel()
	session.TransitionTimer = nil

	session.CurrentLevel++
	LoadLevel(e, session.CurrentLevel)
	session.State = cfg.SessionPlaying
	session.InputFrozen = false
	PersistSession(e)
}

func completeRun(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	session.State = cfg.SessionRunComplete
	session.InputFrozen = true
	CancelRevivals(e)
	GetOrCreateTimers(e).Cancel(timer.ScopeLevel)

	messages.RunComplete.Publish(e.World, messages.RunCompleteEvent{
		Score:      session.Score,
		TotalScore: CalculateTotalScore(session.Stats),
	})
	PersistSession(e)
}

// GameOver ends the run. Only ResetRun leaves this state.
func GameOver(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	if session.State == cfg.SessionGameOver || session.State == cfg.SessionRunComplete {
		return
	}
	session.State = cfg.SessionGameOver
	session.InputFrozen = true
	CancelRevivals(e)
	GetOrCreateTimers(e).Cancel(timer.ScopeLevel)

	messages.GameOver.Publish(e.World, messages.GameOverEvent{
		Level: session.CurrentLevel,
		Score: session.Score,
	})
	PersistSession(e)
}

// ResetRun starts the run over from level 1 with a zero score. Game mode
// and player names are kept.
func ResetRun(e *ecs.ECS) {
	GetOrCreateTimers(e).CancelAll()
	CancelRevivals(e)
	GetOrCreateRevival(e).Collapsed = false

	session := GetOrCreateSession(e)
	previous := session.Score
	session.Score = 0
	session.Stats = components.Stats{}
	session.CurrentLevel = 1
	session.State = cfg.SessionPlaying
	session.InputFrozen = false
	session.TransitionTimer = nil

	for _, player := range players(e) {
		p := components.Player.Get(player)
		clearInvincibility(e, player)
		setTier(e, player, cfg.TierNormal)
		p.Alive = true
		Physics.SetVelocity(player, 0, 0)
	}

	LoadLevel(e, 1)
	if previous != 0 {
		publishScore(e, 0, -previous)
	}
	PersistSession(e)
}

// CalculateTotalScore recomputes a score from run stats alone.
func CalculateTotalScore(stats components.Stats) int {
	return stats.CoinsCollected*cfg.Score.Coin +
		stats.EnemiesDefeated*cfg.Score.Enemy +
		stats.PowerUpsCollected*cfg.Score.PowerUp +
		stats.LevelsCompleted*cfg.Score.LevelComplete +
		stats.BossesDefeated*cfg.Score.BossDefeat
}
