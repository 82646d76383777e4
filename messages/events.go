// Package messages holds the notifications the session publishes for a
// presentation layer. Subscribers receive them when the frame's
// UpdateNotifications system flushes the queues.
package messages

import (
	cfg "github.com/automoto/stompers/config"
	"github.com/yohamta/donburi/features/events"
)

// TierChangedEvent is published on every single-step tier change
type TierChangedEvent struct {
	PlayerID int
	From     cfg.PowerTier
	To       cfg.PowerTier
}

// InvincibilityEvent is published when a window starts or ends
type InvincibilityEvent struct {
	PlayerID int
	Active   bool
	Star     bool // false for the post-damage grace window
}

// PlayerDiedEvent is published once per death
type PlayerDiedEvent struct {
	PlayerID int
}

// RevivalTickEvent reports a co-op countdown step
type RevivalTickEvent struct {
	PlayerID         int
	RemainingSeconds int
}

// PlayerRevivedEvent is published when a countdown completes
type PlayerRevivedEvent struct {
	PlayerID int
	X, Y     float64
}

// BossDamagedEvent carries the values a health bar needs
type BossDamagedEvent struct {
	Health    int
	MaxHealth int
}

// BossDefeatedEvent is published once; the level exit is unlocked with it
type BossDefeatedEvent struct {
	Name  string
	Level int
}

// LevelCompleteEvent is published when the exit is reached
type LevelCompleteEvent struct {
	Level int
	Score int
	Final bool
}

// RunCompleteEvent is published after the final level
type RunCompleteEvent struct {
	Score      int
	TotalScore int
}

// GameOverEvent is published when no revival is possible
type GameOverEvent struct {
	Level int
	Score int
}

// ScoreChangedEvent is published on every score mutation
type ScoreChangedEvent struct {
	Score int
	Delta int
}

var (
	TierChanged   = events.NewEventType[TierChangedEvent]()
	Invincibility = events.NewEventType[InvincibilityEvent]()
	PlayerDied    = events.NewEventType[PlayerDiedEvent]()
	RevivalTick   = events.NewEventType[RevivalTickEvent]()
	PlayerRevived = events.NewEventType[PlayerRevivedEvent]()
	BossDamaged   = events.NewEventType[BossDamagedEvent]()
	BossDefeated  = events.NewEventType[BossDefeatedEvent]()
	LevelComplete = events.NewEventType[LevelCompleteEvent]()
	RunComplete   = events.NewEventType[RunCompleteEvent]()
	GameOver      = events.NewEventType[GameOverEvent]()
	ScoreChanged  = events.NewEventType[ScoreChangedEvent]()
)
