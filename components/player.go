package components

import (
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/timer"
	"github.com/yohamta/donburi"
)

// PlayerData is one player's progression state. Position and velocity live
// in the Object and Physics components and are read through the physics facade.
type PlayerData struct {
	ID        int    // 1 or 2
	Name      string // Display name, kept across run resets
	Tier      cfg.PowerTier
	Alive     bool
	Direction Vector

	Invincible      bool
	InvincibleTimer *timer.Timer // Pending expiry, nil when not invincible
}

var Player = donburi.NewComponentType[PlayerData]()
