package systems

import (
	"github.com/automoto/stompers/components"
	cfg "github.com/automoto/stompers/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances cosmetic flashes. Flashes never gate damage intake.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(cfg.C.FrameDuration().Seconds())

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		value, finished := flash.Tween.Update(dt)
		flash.Value = value
		if finished {
			flash.Tween = nil
			flash.Value = 0
		}
	})
}

// TriggerFlash starts a fading flash on e, restarting any flash in progress.
func TriggerFlash(e *donburi.Entry, seconds float32) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Flash) || seconds <= 0 {
		return
	}
	flash := components.Flash.Get(e)
	flash.Tween = gween.New(1, 0, seconds, ease.OutQuad)
	flash.Value = 1
}
