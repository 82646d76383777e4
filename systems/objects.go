package systems

import (
	"github.com/automoto/stompers/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers moved objects in their space cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Update()
		}
	}
}
