package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer; the session has no renderers of its own.
const Default ecs.LayerID = iota

// PowerTier is a player's position on the power ladder.
type PowerTier int

const (
	TierNormal PowerTier = iota
	TierSuper
	TierFire
)

func (t PowerTier) String() string {
	switch t {
	case TierSuper:
		return "Super"
	case TierFire:
		return "Fire"
	}
	return "Normal"
}

// GameMode selects single player or two-player co-op.
type GameMode int

const (
	SinglePlayer GameMode = iota
	CoOp
)

func (m GameMode) String() string {
	if m == CoOp {
		return "CoOp"
	}
	return "SinglePlayer"
}

// ParseGameMode maps a stored mode name back to a GameMode.
// Anything unrecognised is SinglePlayer.
func ParseGameMode(s string) GameMode {
	if s == CoOp.String() {
		return CoOp
	}
	return SinglePlayer
}

// BossPhase is the one-way boss encounter state.
type BossPhase int

const (
	BossActive BossPhase = iota
	BossDefeated
)

// SessionStateID tracks where the run is.
type SessionStateID int

const (
	SessionPlaying SessionStateID = iota
	SessionLevelComplete
	SessionRunComplete
	SessionGameOver
)

// Terminal reports whether gameplay input is closed in this state.
func (s SessionStateID) Terminal() bool {
	return s != SessionPlaying
}

// PickupKind identifies a collectible.
type PickupKind string

const (
	PickupCoin       PickupKind = "coin"
	PickupMushroom   PickupKind = "mushroom"
	PickupFireFlower PickupKind = "fire_flower"
	PickupStar       PickupKind = "star"
)
