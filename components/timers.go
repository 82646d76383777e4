package components

import (
	"github.com/automoto/stompers/timer"
	"github.com/yohamta/donburi"
)

type TimersData struct {
	Scheduler *timer.Scheduler
}

var Timers = donburi.NewComponentType[TimersData]()
