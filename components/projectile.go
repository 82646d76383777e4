package components

import (
	"github.com/automoto/stompers/timer"
	"github.com/yohamta/donburi"
)

// ProjectileData is a fireball thrown by a Fire tier player.
type ProjectileData struct {
	OwnerID  int
	Lifetime *timer.Timer
}

var Projectile = donburi.NewComponentType[ProjectileData]()
