package components

import (
	"github.com/automoto/stompers/timer"
	"github.com/yohamta/donburi"
)

// HazardData marks damaging areas that cannot be stomped (boss fire breath).
type HazardData struct {
	Source   string
	Lifetime *timer.Timer
}

var Hazard = donburi.NewComponentType[HazardData]()
