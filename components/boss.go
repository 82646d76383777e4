package components

import (
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/timer"
	"github.com/yohamta/donburi"
)

// BossData is a bounded-health encounter. MaxHealth is fixed at creation
// and only used for the health bar ratio.
type BossData struct {
	Name        string
	Health      int
	MaxHealth   int
	Phase       cfg.BossPhase
	AttackTimer *timer.Timer // Periodic fire breath, cancelled on defeat
}

var Boss = donburi.NewComponentType[BossData]()
