package factory

import (
	"github.com/automoto/stompers/archetypes"
	"github.com/automoto/stompers/components"
	"github.com/automoto/stompers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard creates a damaging area such as a boss fire breath.
func CreateHazard(ecs *ecs.ECS, source string, x, y, w, h float64) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	obj := newBox(hazard, x, y, w, h, tags.ResolvHazard)
	addToSpace(ecs, obj)

	components.Hazard.SetValue(hazard, components.HazardData{Source: source})

	return hazard
}
