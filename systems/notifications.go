package systems

import (
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// UpdateNotifications delivers the frame's queued events to subscribers.
func UpdateNotifications(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
