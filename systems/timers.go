package systems

import (
	"time"

	"github.com/automoto/stompers/archetypes"
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/automoto/stompers/timer"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers advances the session clock by one frame and fires due callbacks.
// It runs first in the frame so damage resolution sees expired windows.
func UpdateTimers(e *ecs.ECS) {
	GetOrCreateTimers(e).Advance(cfg.C.FrameDuration())
}

// GetOrCreateTimers returns the singleton scheduler, creating it if needed
func GetOrCreateTimers(e *ecs.ECS) *timer.Scheduler {
	if _, ok := components.Timers.First(e.World); !ok {
		ent := archetypes.Timers.Spawn(e)
		components.Timers.SetValue(ent, components.TimersData{
			Scheduler: timer.NewScheduler(),
		})
	}

	ent, _ := components.Timers.First(e.World)
	return components.Timers.Get(ent).Scheduler
}

// Now returns the session clock time.
func Now(e *ecs.ECS) time.Duration {
	return GetOrCreateTimers(e).Now()
}
